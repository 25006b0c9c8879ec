package slugify

import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "普通英文标题",
			title:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "标点被剔除",
			title:    "Hello, World! 2024",
			expected: "hello-world-2024",
		},
		{
			name:     "多个连续空白折叠为单个连字符",
			title:    "a   b\t c",
			expected: "a-b-c",
		},
		{
			name:     "首尾空白不产生连字符",
			title:    "  trimmed title  ",
			expected: "trimmed-title",
		},
		{
			name:     "大写转小写",
			title:    "UPPER Case",
			expected: "upper-case",
		},
		{
			name:     "纯标点标题得到空 slug",
			title:    "!!!???",
			expected: "",
		},
		{
			name:     "纯空白标题得到空 slug",
			title:    "   ",
			expected: "",
		},
		{
			name:     "空字符串",
			title:    "",
			expected: "",
		},
		{
			name:     "已有连字符被保留",
			title:    "already-slugged title",
			expected: "already-slugged-title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Derive(tt.title)
			if result != tt.expected {
				t.Errorf("Derive(%q) = %q, want %q", tt.title, result, tt.expected)
			}
		})
	}
}

// 派生结果再次派生应保持不变，允许调用方把 slug 回填进标题位安全清洗。
func TestDeriveIdempotent(t *testing.T) {
	titles := []string{
		"Hello, World! 2024",
		"Design Systems at Scale",
		"a   b\t c",
		"already-slugged title",
	}
	for _, title := range titles {
		once := Derive(title)
		twice := Derive(once)
		if once != twice {
			t.Errorf("Derive 不幂等: Derive(%q) = %q, Derive(%q) = %q", title, once, once, twice)
		}
	}
}
