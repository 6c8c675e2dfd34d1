// Package markdown превращает ограниченное подмножество Markdown
// (заголовки, цитаты, жирный, картинки, ссылки, абзацы) в HTML-фрагмент
// с инлайновыми стилями сайта. Конвертер тотален: любой вход даёт выход,
// нераспознанная разметка остаётся литеральным текстом.
//
// Санитизации здесь нет намеренно — на входе только авторский контент.
package markdown

import (
	"regexp"
	"strings"
)

type step struct {
	name string
	re   *regexp.Regexp
	repl string
}

// Порядок важен: блочные конструкции конвертируются до оборачивания
// в абзацы, иначе они оказались бы внутри <p>.
var substitutions = []step{
	{
		name: "h3",
		re:   regexp.MustCompile(`(?m)^### (.*)$`),
		repl: `<h3 style="font-size: 1.5rem; font-weight: 600; color: #343A40; margin: 24px 0 16px 0; line-height: 1.3;">${1}</h3>`,
	},
	{
		name: "h2",
		re:   regexp.MustCompile(`(?m)^## (.*)$`),
		repl: `<h2 style="font-size: 2rem; font-weight: 700; color: #343A40; margin: 32px 0 20px 0; line-height: 1.2;">${1}</h2>`,
	},
	{
		name: "h1",
		re:   regexp.MustCompile(`(?m)^# (.*)$`),
		repl: `<h1 style="font-size: 2.5rem; font-weight: 700; color: #343A40; margin: 40px 0 24px 0; line-height: 1.1;">${1}</h1>`,
	},
	{
		name: "blockquote",
		re:   regexp.MustCompile(`(?m)^> (.*)$`),
		repl: `<blockquote style="border-left: 4px solid #4ECDC4; padding-left: 16px; margin: 24px 0; font-style: italic; color: #6C757D; background: #F8F9FA; padding: 16px; border-radius: 4px;">${1}</blockquote>`,
	},
	{
		name: "bold",
		re:   regexp.MustCompile(`\*\*(.*?)\*\*`),
		repl: `<strong style="font-weight: 600; color: #343A40;">${1}</strong>`,
	},
	{
		// картинки до ссылок: ![..](..) содержит [..](..)
		name: "image",
		re:   regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`),
		repl: `<img src="${2}" alt="${1}" style="width: 100%; max-width: 600px; height: 300px; object-fit: cover; border-radius: 8px; margin: 20px 0; box-shadow: 0 4px 6px rgba(0,0,0,0.1);" />`,
	},
	{
		name: "link",
		re:   regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`),
		repl: `<a href="${2}" style="color: #007BFF; text-decoration: underline;" target="_blank" rel="noopener noreferrer">${1}</a>`,
	},
}

const paragraphOpen = `<p style="margin: 16px 0; line-height: 1.7; color: #343A40;">`

// Чистка после оборачивания: пустые абзацы долой, блочные элементы
// выносятся из <p>-обёртки.
var cleanups = []step{
	{name: "empty-paragraph", re: regexp.MustCompile(`<p[^>]*></p>`), repl: ``},
	{name: "heading-open", re: regexp.MustCompile(`<p[^>]*><h`), repl: `<h`},
	{name: "heading-close", re: regexp.MustCompile(`</h([1-6])></p>`), repl: `</h${1}>`},
	{name: "blockquote-open", re: regexp.MustCompile(`<p[^>]*><blockquote`), repl: `<blockquote`},
	{name: "blockquote-close", re: regexp.MustCompile(`</blockquote></p>`), repl: `</blockquote>`},
}

// Convert — чистая функция Markdown → HTML-фрагмент.
func Convert(md string) string {
	out := md
	for _, s := range substitutions {
		out = s.re.ReplaceAllString(out, s.repl)
	}
	// двойной перенос — граница абзаца, одиночный — <br/>
	out = strings.ReplaceAll(out, "\n\n", "</p>"+paragraphOpen)
	out = strings.ReplaceAll(out, "\n", "<br/>")
	out = paragraphOpen + out + "</p>"
	for _, s := range cleanups {
		out = s.re.ReplaceAllString(out, s.repl)
	}
	return out
}
