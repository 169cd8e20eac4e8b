package suggest

// Delimiter joins the questions in a suggestion response.
const Delimiter = "||"

// GenericTopic is reported when the generic fallback tier served the request.
const GenericTopic = "general"

// topics is the fixed list one topic is drawn from per request.
var topics = []string{
	"hobbies",
	"travel",
	"food",
	"movies",
	"books",
	"music",
	"technology",
	"nature",
	"dreams",
	"creativity",
	"learning",
	"happiness",
	"friendship",
	"memories",
	"future",
	"adventure",
}

// Topics returns a copy of the topic list.
func Topics() []string {
	out := make([]string, len(topics))
	copy(out, topics)
	return out
}

// fallbackQuestions maps a topic to its pre-written question triple.
// Topics without an entry degrade to the generic triple.
var fallbackQuestions = map[string][3]string{
	"hobbies": {
		"What hobby would you take up if money and time weren't factors?",
		"What's something you've always wanted to learn but haven't had the chance to yet?",
		"What activity brings you the most joy and why?",
	},
	"travel": {
		"If you could teleport anywhere for a day, where would you go?",
		"What's the most beautiful place you've ever visited?",
		"What destination is at the top of your travel bucket list?",
	},
	"food": {
		"What's your go-to comfort food and why?",
		"If you could only eat one cuisine for the rest of your life, what would it be?",
		"What's the most memorable meal you've ever had?",
	},
	"movies": {
		"What movie could you watch over and over without getting tired of it?",
		"If your life was made into a film, which actor would you want to play you?",
		"What's a movie that changed your perspective on something important?",
	},
	"books": {
		"What book has had the biggest impact on your life?",
		"If you could live in any fictional world from a book, which would you choose?",
		"What's a book you think everyone should read at least once?",
	},
	"music": {
		"What song always puts you in a good mood?",
		"If you could only listen to one artist for the rest of your life, who would it be?",
		"What's a song that brings back strong memories for you?",
	},
	"technology": {
		"What technological advancement are you most excited to see in your lifetime?",
		"How do you think technology has most improved your daily life?",
		"If you could invent any technology, what would it be?",
	},
	"nature": {
		"What's your favorite natural wonder or phenomenon?",
		"If you could spend a month in any natural environment, where would you choose?",
		"What's your favorite way to connect with nature?",
	},
	"creativity": {
		"When do you feel most creative?",
		"What creative outlet do you enjoy most?",
		"How do you overcome creative blocks?",
	},
	"happiness": {
		"What's something small that brings you joy every day?",
		"What does your perfect day look like?",
		"When was the last time you felt truly happy?",
	},
	"friendship": {
		"What quality do you value most in a friend?",
		"What's your favorite memory with a friend?",
		"How do you show appreciation to the important people in your life?",
	},
	"future": {
		"What are you most looking forward to in the next few years?",
		"How do you think daily life will be different in 50 years?",
		"What's one goal you're currently working toward?",
	},
}

// genericQuestions is the last-resort triple; serving it can never fail.
var genericQuestions = [3]string{
	"What's something you're looking forward to?",
	"If you could have any superpower, what would it be?",
	"What's your favorite way to relax?",
}
