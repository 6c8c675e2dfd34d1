package markdown

import (
	"strings"
	"testing"
)

func TestConvertEmpty(t *testing.T) {
	if got := Convert(""); got != "" {
		t.Fatalf("пустой вход должен давать пустой выход, получено: %q", got)
	}
}

func TestConvertHeadingWithoutParagraphWrap(t *testing.T) {
	got := Convert("# Title")

	if !strings.HasPrefix(got, "<h1 ") {
		t.Fatalf("заголовок обёрнут в абзац: %q", got)
	}
	if !strings.HasSuffix(got, "</h1>") {
		t.Fatalf("закрывающий тег заголовка остался внутри </p>: %q", got)
	}
	if !strings.Contains(got, ">Title</h1>") {
		t.Fatalf("текст заголовка потерян: %q", got)
	}
	if strings.Contains(got, "<p") {
		t.Fatalf("вокруг заголовка не должно быть <p>: %q", got)
	}
}

func TestConvertHeadingLevels(t *testing.T) {
	cases := []struct {
		in   string
		open string
	}{
		{"# One", "<h1 "},
		{"## Two", "<h2 "},
		{"### Three", "<h3 "},
	}
	for _, c := range cases {
		got := Convert(c.in)
		if !strings.HasPrefix(got, c.open) {
			t.Errorf("Convert(%q): ожидался %s..., получено %q", c.in, c.open, got)
		}
	}
}

func TestConvertParagraphSplit(t *testing.T) {
	got := Convert("Hello\n\nWorld")

	if n := strings.Count(got, "<p style="); n != 2 {
		t.Fatalf("ожидалось 2 абзаца, получено %d: %q", n, got)
	}
	if !strings.Contains(got, ">Hello</p>") || !strings.Contains(got, ">World</p>") {
		t.Fatalf("абзацы разбиты неверно: %q", got)
	}
}

func TestConvertSingleNewlineBecomesBreak(t *testing.T) {
	got := Convert("Hello\nWorld")

	if !strings.Contains(got, "Hello<br/>World") {
		t.Fatalf("одиночный перенос должен стать <br/>: %q", got)
	}
	if n := strings.Count(got, "<p style="); n != 1 {
		t.Fatalf("одиночный перенос не должен разбивать абзац: %q", got)
	}
}

func TestConvertBlockquote(t *testing.T) {
	got := Convert("> Wise words")

	if !strings.HasPrefix(got, "<blockquote ") || !strings.HasSuffix(got, "</blockquote>") {
		t.Fatalf("цитата обёрнута в абзац: %q", got)
	}
	if !strings.Contains(got, ">Wise words</blockquote>") {
		t.Fatalf("текст цитаты потерян: %q", got)
	}
}

func TestConvertBold(t *testing.T) {
	got := Convert("this is **important** text")

	if !strings.Contains(got, `<strong style="font-weight: 600; color: #343A40;">important</strong>`) {
		t.Fatalf("жирный не сконвертирован: %q", got)
	}
}

func TestConvertLink(t *testing.T) {
	got := Convert("see [our guide](https://example.com/guide)")

	if !strings.Contains(got, `href="https://example.com/guide"`) {
		t.Fatalf("ссылка не сконвертирована: %q", got)
	}
	if !strings.Contains(got, `target="_blank"`) || !strings.Contains(got, `rel="noopener noreferrer"`) {
		t.Fatalf("у ссылки нет безопасных атрибутов: %q", got)
	}
	if !strings.Contains(got, ">our guide</a>") {
		t.Fatalf("текст ссылки потерян: %q", got)
	}
}

func TestConvertImageBeforeLink(t *testing.T) {
	got := Convert("![oxygen setup](https://example.com/oxygen.jpg)")

	if !strings.Contains(got, `<img src="https://example.com/oxygen.jpg" alt="oxygen setup"`) {
		t.Fatalf("картинка не сконвертирована: %q", got)
	}
	if strings.Contains(got, "<a ") {
		t.Fatalf("картинка не должна превращаться в ссылку: %q", got)
	}
}

func TestConvertUnmatchedSyntaxStaysLiteral(t *testing.T) {
	got := Convert("a * b and **unclosed")

	if !strings.Contains(got, "a * b and **unclosed") {
		t.Fatalf("неполная разметка должна остаться как есть: %q", got)
	}
	if strings.Contains(got, "<strong") {
		t.Fatalf("одиночные звёздочки не должны конвертироваться: %q", got)
	}
}

func TestConvertHeadingFollowedByParagraph(t *testing.T) {
	got := Convert("# Care Basics\n\nStart slow.")

	if !strings.HasPrefix(got, "<h1 ") {
		t.Fatalf("заголовок обёрнут в абзац: %q", got)
	}
	if !strings.Contains(got, "</h1><p style=") {
		t.Fatalf("после заголовка должен идти чистый абзац: %q", got)
	}
	if !strings.Contains(got, ">Start slow.</p>") {
		t.Fatalf("абзац после заголовка потерян: %q", got)
	}
}

// Уже сконвертированные теги не должны интерпретироваться повторно.
func TestConvertIdempotentOnTags(t *testing.T) {
	// блочные элементы после чистки воспроизводятся байт в байт
	for _, in := range []string{"# Title", "> quote"} {
		once := Convert(in)
		if twice := Convert(once); once != twice {
			t.Errorf("повторная конвертация изменила выход для %q:\n1: %q\n2: %q", in, once, twice)
		}
	}

	// инлайновые элементы получают новую <p>-обёртку, но сами теги
	// не перечитываются как Markdown
	for _, in := range []string{"[link](https://example.com)", "![img](https://example.com/i.jpg)"} {
		once := Convert(in)
		twice := Convert(once)
		if strings.Count(twice, "<a ") != strings.Count(once, "<a ") {
			t.Errorf("ссылка интерпретирована повторно для %q: %q", in, twice)
		}
		if strings.Count(twice, "<img ") != strings.Count(once, "<img ") {
			t.Errorf("картинка интерпретирована повторно для %q: %q", in, twice)
		}
	}
}

func TestSubstitutionStepsIndividually(t *testing.T) {
	for _, s := range substitutions {
		switch s.name {
		case "h1":
			if got := s.re.ReplaceAllString("# A", s.repl); !strings.Contains(got, ">A</h1>") {
				t.Errorf("шаг %s: %q", s.name, got)
			}
		case "bold":
			if got := s.re.ReplaceAllString("**A** and **B**", s.repl); strings.Count(got, "<strong") != 2 {
				t.Errorf("шаг %s: нежадный матч сломан: %q", s.name, got)
			}
		case "blockquote":
			// только начало строки
			if got := s.re.ReplaceAllString("a > b", s.repl); got != "a > b" {
				t.Errorf("шаг %s: сработал не с начала строки: %q", s.name, got)
			}
		}
	}
}
