package analyzer

import "testing"

func TestMatchesGlob(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		include  []string
		exclude  []string
		want     bool
	}{
		{
			name:     "doublestar include",
			filePath: "/project/src/config/limits.ts",
			include:  []string{"src/**/*.ts"},
			want:     true,
		},
		{
			name:     "doublestar include at root of prefix",
			filePath: "/project/src/limits.ts",
			include:  []string{"src/**/*.ts"},
			want:     true,
		},
		{
			name:     "prefix not present",
			filePath: "/project/lib/limits.ts",
			include:  []string{"src/**/*.ts"},
			want:     false,
		},
		{
			name:     "bare doublestar matches everything",
			filePath: "/project/anything/at/all.ts",
			include:  []string{"**/*.ts"},
			want:     true,
		},
		{
			name:     "suffix mismatch",
			filePath: "/project/src/limits.tsx",
			include:  []string{"src/**/*.ts"},
			want:     false,
		},
		{
			name:     "exclude wins over include",
			filePath: "/project/src/limits.spec.ts",
			include:  []string{"src/**/*.ts"},
			exclude:  []string{"src/**/*.spec.ts"},
			want:     false,
		},
		{
			name:     "exclude does not hit other files",
			filePath: "/project/src/limits.ts",
			include:  []string{"src/**/*.ts"},
			exclude:  []string{"src/**/*.spec.ts"},
			want:     true,
		},
		{
			name:     "basename pattern without doublestar",
			filePath: "/project/src/constants.ts",
			include:  []string{"constants.ts"},
			want:     true,
		},
		{
			name:     "empty include matches nothing",
			filePath: "/project/src/limits.ts",
			include:  nil,
			want:     false,
		},
		{
			name:     "multiple includes second matches",
			filePath: "/project/shared/tokens.ts",
			include:  []string{"src/**/*.ts", "shared/**/*.ts"},
			want:     true,
		},
		{
			name:     "nested path after prefix",
			filePath: "/project/src/a/b/c/deep.ts",
			include:  []string{"src/**/*.ts"},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesGlob(tt.filePath, tt.include, tt.exclude)
			if got != tt.want {
				t.Errorf("MatchesGlob(%q, %v, %v) = %v, want %v",
					tt.filePath, tt.include, tt.exclude, got, tt.want)
			}
		})
	}
}
