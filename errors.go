package pandoc

import "fmt"

// UnknownTagError reports a tag outside the closed kind enumeration, or a
// tag used with the wrong category (a block tag registered as an inline
// handler, a meta tag met where an inline was expected, and so on).
type UnknownTagError struct {
	Tag  Tag
	Want string // expected category, e.g. "inline"
}

func (e *UnknownTagError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("pandoc: unknown %s tag %q", e.Want, e.Tag)
	}
	return fmt.Sprintf("pandoc: unknown tag %q", e.Tag)
}

// ContentError reports a payload that does not match a kind's declared
// shape: a wrong tuple length, a payload on a nullary kind, or a field of
// the wrong JSON type.
type ContentError struct {
	Tag    Tag
	Reason string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("pandoc: bad %s content: %s", e.Tag, e.Reason)
}

func contentErr(tag Tag, format string, args ...any) error {
	return &ContentError{Tag: tag, Reason: fmt.Sprintf(format, args...)}
}

// VersionError reports a document whose pandoc-api-version is not
// compatible with APIVersion (major and minor must match).
type VersionError struct {
	Got []int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("pandoc: incompatible pandoc-api-version %v, implemented %v", e.Got, APIVersion)
}
