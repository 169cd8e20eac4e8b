package model

import "testing"

func TestUser_ShareLink(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		baseURL string
		want    string
	}{
		{
			name:    "spaces_become_dashes",
			user:    User{ID: "01HZX", Name: "Jane Doe"},
			baseURL: "https://whisperbox.app",
			want:    "https://whisperbox.app/user/Jane-Doe/01HZX",
		},
		{
			name:    "trailing_slash_trimmed",
			user:    User{ID: "01HZX", Name: "Jane"},
			baseURL: "https://whisperbox.app/",
			want:    "https://whisperbox.app/user/Jane/01HZX",
		},
		{
			name:    "collapses_repeated_spaces",
			user:    User{ID: "01HZX", Name: "Jane  Q  Doe"},
			baseURL: "https://whisperbox.app",
			want:    "https://whisperbox.app/user/Jane-Q-Doe/01HZX",
		},
		{
			name:    "empty_name_falls_back",
			user:    User{ID: "01HZX", Name: "   "},
			baseURL: "https://whisperbox.app",
			want:    "https://whisperbox.app/user/user/01HZX",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.user.ShareLink(test.baseURL)
			if got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}
