package tdf

import "strings"

// RouteNameParts is the decomposed form of a composite route display name.
// Names are stored as "title|subtitle||badge" - the badge is separated by a
// double pipe, the subtitle by a single pipe. Both are optional.
type RouteNameParts struct {
	Title    string `groups:"basic"`
	Subtitle string `groups:"basic"`
	Badge    string `groups:"basic"`
}

func SplitRouteName(name string) RouteNameParts {
	var parts RouteNameParts

	mainPart := name
	if before, after, found := strings.Cut(name, "||"); found {
		mainPart = before
		parts.Badge = after
	}

	if before, after, found := strings.Cut(mainPart, "|"); found {
		parts.Title = before
		parts.Subtitle = after
	} else {
		parts.Title = mainPart
	}

	return parts
}
