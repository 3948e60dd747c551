package event

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "%{"
	endTag   = "}"
)

// Template is a string with %{field} references, e.g. "logs-%{app}" or
// "%{[user][id]}". References that cannot be resolved are kept literally.
type Template struct {
	raw  string
	tmpl *fasttemplate.Template
	// suffix starts at the first %{ without a closing brace and is always
	// literal text.
	suffix string
	refs   int
}

// ParseTemplate prepares s for execution.
func ParseTemplate(s string) Template {
	t := Template{raw: s}

	body := s
	if i := unterminated(s); i >= 0 {
		body, t.suffix = s[:i], s[i:]
	}

	tmpl, err := fasttemplate.NewTemplate(body, startTag, endTag)
	if err != nil {
		t.suffix = s
		return t
	}
	t.tmpl = tmpl

	tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if parseRef(tag) != nil {
			t.refs++
		}
		return 0, nil
	})

	return t
}

// unterminated returns the index of the first start tag with no end tag
// after it, or -1.
func unterminated(s string) int {
	offset := 0
	for {
		i := strings.Index(s[offset:], startTag)
		if i < 0 {
			return -1
		}
		i += offset

		j := strings.Index(s[i+len(startTag):], endTag)
		if j < 0 {
			return i
		}
		offset = i + len(startTag) + j + len(endTag)
	}
}

// parseRef accepts "name" and "[a][b]" forms.
func parseRef(s string) []string {
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "[") {
		return []string{s}
	}

	var path []string
	for s != "" {
		if s[0] != '[' {
			return nil
		}
		end := strings.IndexByte(s, ']')
		if end <= 1 {
			return nil
		}
		path = append(path, s[1:end])
		s = s[end+1:]
	}
	return path
}

// IsStatic reports whether the template contains no field references.
func (t Template) IsStatic() bool {
	return t.refs == 0
}

func (t Template) String() string {
	return t.raw
}

// Execute resolves the template against e.
func (t Template) Execute(e Event) string {
	if t.tmpl == nil {
		return t.raw
	}

	out, err := t.tmpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		if ref := parseRef(tag); ref != nil {
			if value, ok := e.Get(ref...); ok && value != nil {
				return io.WriteString(w, format(value))
			}
		}
		return io.WriteString(w, startTag+tag+endTag)
	})
	if err != nil {
		return t.raw
	}

	return out + t.suffix
}

func format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
