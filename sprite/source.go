package sprite

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Named is a sprite and the Go identifier it is declared as.
type Named struct {
	Name string
	*Sprite
}

var sourceTmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"bytes": byteList,
}).Parse(`// Code generated by w4sprite; DO NOT EDIT.

package {{.Package}}
{{range .Sprites}}
// {{.Name}} is {{.Width}}x{{.Height}} at {{.BPP}} bit(s) per pixel.
const (
	{{.Name}}Width  = {{.Width}}
	{{.Name}}Height = {{.Height}}
	{{.Name}}Flags  = {{printf "%d" .Flags}}
)

var {{.Name}} = [{{len .Data}}]byte{
{{bytes .Data}}
}
{{end}}`))

// WriteSource writes a Go source file declaring the sprites in package pkg.
func WriteSource(w io.Writer, pkg string, sprites []Named) error {
	var buf bytes.Buffer
	err := sourceTmpl.Execute(&buf, struct {
		Package string
		Sprites []Named
	}{pkg, sprites})
	if err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting source: %v", err)
	}
	_, err = w.Write(src)
	return err
}

func byteList(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i%8 == 0 {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%.2x,", v)
	}
	return b.String()
}

// Name derives a Go identifier from a file name,
// so that "player-idle.png" becomes "playerIdle".
func Name(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, w := range words {
		r, n := utf8.DecodeRuneInString(w)
		if i == 0 {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		b.WriteString(w[n:])
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "sprite" + name
	}
	return name
}
