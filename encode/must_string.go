package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/usda/usd"
)

func MustString(s *usd.Stage, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(s, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
