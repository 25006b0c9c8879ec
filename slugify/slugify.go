// Package slugify 从文章标题派生 URL 安全标识 (slug)。
// 纯函数、确定性、全函数：任何输入都会产出一个字符串，可能为空串
// （标题不含任何字母或数字时）。调用方必须把空 slug 当作校验失败处理，
// 不允许落库（见 lifecycle 包）。
package slugify

import (
	"strings"
	"unicode"
)

// Derive 派生 slug：
//  1. 全部转小写；
//  2. 剔除小写 ASCII 字母、数字、空白、连字符之外的所有字符；
//  3. 连续的空白/连字符折叠为单个连字符；
//  4. 去掉首尾的连字符与空白。
//
// 连字符保留在第 2 步的合法字符集内，保证 Derive(Derive(t)) == Derive(t)，
// 已派生过的 slug 再次派生不会被改写。
func Derive(title string) string {
	var kept strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == '-',
			unicode.IsSpace(r):
			kept.WriteRune(r)
		}
	}

	// FieldsFunc 按空白/连字符切分并丢弃空段，天然完成折叠与首尾修剪。
	parts := strings.FieldsFunc(kept.String(), func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	return strings.Join(parts, "-")
}
