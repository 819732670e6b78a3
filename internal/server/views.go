package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/namesmith/pkg/shortlist"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

const styles = `body{font-family:system-ui,sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem}
.word{font-size:2.5rem;letter-spacing:.2rem}
.word mark{background:#ffe08a}
.position{margin:1rem 0;padding:.5rem;border:1px solid #ddd;border-radius:4px}
.rows{width:100%;border-collapse:collapse}
.rows td{padding:.1rem .4rem}
.rows tr.chosen{font-weight:bold;background:#fff6d6}
.bar{width:60%}
.bar span{display:block;height:.8rem;background:#4a7bd0}
#saved li{margin:.2rem 0}`

// errWriter keeps the first write error so views can be written without
// checking every call.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// signalsAttr encodes the initial datastar signals as an escaped JSON object.
func signalsAttr(seed, word string) string {
	data, err := json.Marshal(signals{Seed: seed, Word: word})
	if err != nil {
		return "{}"
	}
	return esc(string(data))
}

// pageView renders the full page.
func pageView(res resultView, saved []shortlist.Item) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.write(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>namesmith</title>`)
		ew.printf(`<script type="module" src="%s"></script><style>%s</style></head>`, datastarScript, styles)
		ew.printf(`<body data-signals="%s"><main><h1>namesmith</h1>`, signalsAttr(res.Seed, res.Word))
		ew.printf(`<form method="post" action="/generate" data-on-submit__prevent="@post('/generate')">`+
			`<input name="seed" placeholder="seed" value="%s" data-bind-seed> <button type="submit">Generate</button></form>`, esc(res.Seed))
		if ew.err != nil {
			return ew.err
		}
		if err := resultPanel(res).Render(ctx, w); err != nil {
			return err
		}
		if err := savedPanel(saved).Render(ctx, w); err != nil {
			return err
		}
		ew.write(`</main></body></html>`)
		return ew.err
	})
}

// resultPanel renders #result: the word, a save button and one table per
// position.
func resultPanel(res resultView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.write(`<section id="result">`)
		ew.printf(`<p class="word">%s</p>`, esc(res.Word))
		if res.Word != "" {
			ew.printf(`<form method="post" action="/saved" data-on-submit__prevent="@post('/saved')">`+
				`<input type="hidden" name="word" value="%s"><button type="submit">+ Save</button></form>`, esc(res.Word))
		}
		for _, p := range res.Positions {
			positionPanel(ew, res.Word, p)
		}
		ew.write(`</section>`)
		return ew.err
	})
}

func positionPanel(ew *errWriter, word string, p positionView) {
	ew.printf(`<div class="position"><h3>%d: <span class="word">%s</span> <small>%s</small></h3>`,
		p.Index+1, highlight(word, p.Index), esc(string(p.Phase)))
	if len(p.Table) == 0 {
		ew.write(`<p>no table</p></div>`)
		return
	}
	ew.write(`<table class="rows">`)
	for _, r := range p.Table {
		class := ""
		if r.Symbol == p.Symbol {
			class = ` class="chosen"`
		}
		ew.printf(`<tr%s><td>%s</td><td class="bar"><span style="width:%.2f%%"></span></td><td>%.2f%%</td></tr>`,
			class, esc(r.Symbol), r.Percent, r.Percent)
	}
	ew.write(`</table></div>`)
}

// highlight marks the symbol at index i of word. Positions past the end of
// the word (the closing space) mark nothing.
func highlight(word string, i int) string {
	if i < 0 || i >= len(word) {
		return esc(word)
	}
	var b strings.Builder
	b.WriteString(esc(word[:i]))
	b.WriteString("<mark>")
	b.WriteString(esc(word[i : i+1]))
	b.WriteString("</mark>")
	b.WriteString(esc(word[i+1:]))
	return b.String()
}

// savedPanel renders #saved, newest first.
func savedPanel(items []shortlist.Item) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.write(`<section id="saved"><h2>Saved</h2>`)
		if len(items) == 0 {
			ew.write(`<p>Nothing saved yet.</p></section>`)
			return ew.err
		}
		ew.write(`<ul>`)
		for _, it := range items {
			ew.printf(`<li><strong>%s</strong> <small>%s</small> <button data-on-click="@delete('/saved/%s')">remove</button></li>`,
				esc(it.Word), it.SavedAt.Format("15:04:05"), it.ID)
		}
		ew.write(`</ul></section>`)
		return ew.err
	})
}
