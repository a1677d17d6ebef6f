package variant

import (
	"strconv"
	"strings"

	"github.com/wippyai/variant/errors"
)

type segment struct {
	field string
	index int
	item  bool
}

// parsePath splits "a.b[2]" into segments. The syntax is the one error
// paths render with.
func parsePath(path string) ([]segment, error) {
	var segs []segment
	rest := path
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			if rest == "" || rest[0] == '.' || rest[0] == '[' {
				return nil, errors.Custom("invalid path %q: empty field name", path)
			}
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, errors.Custom("invalid path %q: unterminated index", path)
			}
			n, err := strconv.Atoi(rest[1:end])
			if err != nil || n < 0 {
				return nil, errors.Custom("invalid path %q: bad index %q", path, rest[1:end])
			}
			segs = append(segs, segment{index: n, item: true})
			rest = rest[end+1:]
		default:
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			segs = append(segs, segment{field: rest[:end]})
			rest = rest[end:]
		}
	}
	return segs, nil
}

// Lookup walks path through nested dictionaries and arrays and returns the
// value found there, borrowed from v. Failures are wrapped with the path
// walked so far, so the error renders the same path back.
func (v Variant) Lookup(path string) (Variant, error) {
	segs, err := parsePath(path)
	if err != nil {
		return Nil(), err
	}
	cur := v
	for i, seg := range segs {
		next, leaf := step(cur, seg)
		if leaf != nil {
			return Nil(), wrapPath(segs[:i+1], leaf)
		}
		cur = next
	}
	return cur, nil
}

func step(cur Variant, seg segment) (Variant, *errors.Error) {
	if seg.item {
		arr, err := cur.AsArray()
		if err != nil {
			return Nil(), errors.From(err)
		}
		if seg.index >= arr.Len() {
			return Nil(), errors.InvalidLength(arr.Len(), seg.index+1)
		}
		return arr.Get(seg.index), nil
	}
	d, err := cur.AsDictionary()
	if err != nil {
		return Nil(), errors.From(err)
	}
	val, ok := d.GetString(seg.field)
	if !ok {
		return Nil(), errors.Custom("no such key")
	}
	return val, nil
}

func wrapPath(segs []segment, leaf *errors.Error) *errors.Error {
	err := leaf
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].item {
			err = errors.InvalidItem(segs[i].index, err)
		} else {
			err = errors.InvalidField(segs[i].field, err)
		}
	}
	return err
}
