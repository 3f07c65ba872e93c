package zone

import (
	"fmt"
	"slices"
	"strings"
)

var (
	sideTokens = [...]string{
		SideTop:    "top",
		SideRight:  "right",
		SideBottom: "bottom",
		SideLeft:   "left",
	}
	cornerTokens = [...]string{
		TopLeft:     "top-left",
		TopRight:    "top-right",
		BottomLeft:  "bottom-left",
		BottomRight: "bottom-right",
	}
	directionTokens = [...]string{
		Up:    "up",
		Down:  "down",
		Left:  "left",
		Right: "right",
	}
)

// InvalidTokenError is returned when parsing text that does not name
// any value of the requested kind.
type InvalidTokenError struct {
	Kind  string
	Token string

	// Valid lists every accepted spelling.
	Valid []string
}

func (err *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid %v %q: expected one of %v", err.Kind, err.Token, strings.Join(err.Valid, ", "))
}

func token[T ~uint8](tokens []string, v T, kind string) string {
	if int(v) >= len(tokens) {
		return fmt.Sprintf("%v(%d)", kind, uint8(v))
	}
	return tokens[v]
}

func parse[T ~uint8](tokens []string, text, kind string) (T, error) {
	text = strings.TrimSpace(text)
	for i, tok := range tokens {
		if strings.EqualFold(text, tok) {
			return T(i), nil
		}
	}
	return 0, &InvalidTokenError{Kind: kind, Token: text, Valid: slices.Clone(tokens)}
}

// String returns the kebab-case token for s, such as "top".
func (s Side) String() string { return token(sideTokens[:], s, "side") }

// String returns the kebab-case token for c, such as "top-left".
func (c Corner) String() string { return token(cornerTokens[:], c, "corner") }

// String returns the kebab-case token for d, such as "up".
func (d Direction) String() string { return token(directionTokens[:], d, "direction") }

// ParseSide parses a side token, ignoring case.
func ParseSide(text string) (Side, error) {
	return parse[Side](sideTokens[:], text, "side")
}

// ParseCorner parses a corner token, ignoring case.
func ParseCorner(text string) (Corner, error) {
	return parse[Corner](cornerTokens[:], text, "corner")
}

// ParseDirection parses a direction token, ignoring case.
func ParseDirection(text string) (Direction, error) {
	return parse[Direction](directionTokens[:], text, "direction")
}

// ParseZone parses either a side or a corner token. Sides are tried
// first.
func ParseZone(text string) (Zone, error) {
	if s, err := ParseSide(text); err == nil {
		return s, nil
	}
	if c, err := ParseCorner(text); err == nil {
		return c, nil
	}
	return nil, &InvalidTokenError{
		Kind:  "zone",
		Token: strings.TrimSpace(text),
		Valid: slices.Concat(sideTokens[:], cornerTokens[:]),
	}
}

func (s Side) MarshalText() ([]byte, error)      { return []byte(s.String()), nil }
func (c Corner) MarshalText() ([]byte, error)    { return []byte(c.String()), nil }
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (c *Corner) UnmarshalText(text []byte) error {
	v, err := ParseCorner(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
