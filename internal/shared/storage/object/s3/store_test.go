package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "a1b2/plan-1.pdf", want: "a1b2/plan-1.pdf"},
		{name: "simple prefix", prefix: "plans", key: "a1b2/plan-1.pdf", want: "plans/a1b2/plan-1.pdf"},
		{name: "prefix trailing slash", prefix: "plans/", key: "a1b2/plan-1_pages.json", want: "plans/a1b2/plan-1_pages.json"},
		{name: "prefix and key slashes", prefix: "/plans/", key: "/a1b2/plan-1.pdf", want: "plans/a1b2/plan-1.pdf"},
		{name: "nested prefix", prefix: "plans/prod", key: "a1b2/plan-1.pdf", want: "plans/prod/a1b2/plan-1.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
