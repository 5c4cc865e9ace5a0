package almanac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"rangefold/internal/rangemap"
)

// textFile is the grammar of the text format.
type textFile struct {
	Seeds    []*textNumber  `"seeds" ":" @@*`
	Sections []*textSection `@@*`
}

type textSection struct {
	Pos lexer.Position

	From  string      `@Ident "-" "to" "-"`
	To    string      `@Ident "map" ":"`
	Rules []*textRule `@@*`
}

type textRule struct {
	Dest *textNumber `@@`
	Src  *textNumber `@@`
	Len  *textNumber `@@`
}

type textNumber struct {
	Pos lexer.Position

	Value string `@Number`
}

// textLexer tokenizes the text format. Newlines carry no meaning: a section
// ends where the next header starts.
var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[-:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var textParser = participle.MustBuild[textFile](
	participle.Lexer(textLexer),
	participle.Elide("Whitespace"),
)

// ParseText parses the text format.
func ParseText(data []byte) (*Almanac, error) {
	tf, err := textParser.ParseBytes("", data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac text: %w", err)
	}

	a := &Almanac{Seeds: make([]rangemap.ID, 0, len(tf.Seeds))}

	for _, n := range tf.Seeds {
		v, err := n.id()
		if err != nil {
			return nil, err
		}

		a.Seeds = append(a.Seeds, v)
	}

	for _, ts := range tf.Sections {
		sec := Section{From: ts.From, To: ts.To, Rules: make([]Triple, 0, len(ts.Rules))}

		for _, tr := range ts.Rules {
			var vals [3]rangemap.ID

			for i, n := range []*textNumber{tr.Dest, tr.Src, tr.Len} {
				vals[i], err = n.id()
				if err != nil {
					return nil, err
				}
			}

			sec.Rules = append(sec.Rules, Triple{Dest: vals[0], Src: vals[1], Len: vals[2]})
		}

		a.Stages = append(a.Stages, sec)
	}

	applyDefaults(a)

	return a, nil
}

func (n *textNumber) id() (rangemap.ID, error) {
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", n.Pos, n.Value, err)
	}

	return v, nil
}

// RenderText renders a in the text format.
func RenderText(a *Almanac) []byte {
	var sb strings.Builder

	sb.WriteString("seeds:")

	for _, s := range a.Seeds {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(s, 10))
	}

	sb.WriteByte('\n')

	for _, sec := range a.Stages {
		sb.WriteString("\n" + sec.Name() + " map:\n")

		for _, r := range sec.Rules {
			sb.WriteString(r.String())
			sb.WriteByte('\n')
		}
	}

	return []byte(sb.String())
}
