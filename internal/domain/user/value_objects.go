package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidContactNumber = errors.New("invalid contact number")
	ErrInvalidRole          = errors.New("invalid role")
)

// Philippine mobile numbers: 09XXXXXXXXX, 639XXXXXXXXX or +639XXXXXXXXX.
var mobileRegex = regexp.MustCompile(`^(?:\+?63|0)(9\d{9})$`)

// ContactNumber is stored in E.164 form (+639XXXXXXXXX).
type ContactNumber struct {
	value string
}

func NewContactNumber(s string) (ContactNumber, error) {
	s = strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
	m := mobileRegex.FindStringSubmatch(s)
	if m == nil {
		return ContactNumber{}, ErrInvalidContactNumber
	}
	return ContactNumber{value: "+63" + m[1]}, nil
}

func (c ContactNumber) Value() string {
	return c.value
}

func (c ContactNumber) IsEmpty() bool {
	return c.value == ""
}
