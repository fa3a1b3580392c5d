package taxonomy

func ids(names ...string) []ClassGroupID {
	out := make([]ClassGroupID, len(names))
	for i, n := range names {
		out[i] = ClassGroupID(n)
	}
	return out
}

func defaultConflicts() map[ClassGroupID][]ClassGroupID {
	return map[ClassGroupID][]ClassGroupID{
		"overflow":         ids("overflow-x", "overflow-y"),
		"overscroll":       ids("overscroll-x", "overscroll-y"),
		"inset":            ids("inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"),
		"inset-x":          ids("right", "left"),
		"inset-y":          ids("top", "bottom"),
		"flex":             ids("basis", "grow", "shrink"),
		"gap":              ids("gap-x", "gap-y"),
		"p":                ids("px", "py", "ps", "pe", "pt", "pr", "pb", "pl"),
		"px":               ids("pr", "pl"),
		"py":               ids("pt", "pb"),
		"m":                ids("mx", "my", "ms", "me", "mt", "mr", "mb", "ml"),
		"mx":               ids("mr", "ml"),
		"my":               ids("mt", "mb"),
		"size":             ids("w", "h"),
		"font-size":        ids("leading"),
		"fvn-normal":       ids("fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"),
		"fvn-ordinal":      ids("fvn-normal"),
		"fvn-slashed-zero": ids("fvn-normal"),
		"fvn-figure":       ids("fvn-normal"),
		"fvn-spacing":      ids("fvn-normal"),
		"fvn-fraction":     ids("fvn-normal"),
		"line-clamp":       ids("display", "overflow"),
		"rounded": ids("rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l",
			"rounded-ss", "rounded-se", "rounded-ee", "rounded-es", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"),
		"rounded-s":      ids("rounded-ss", "rounded-es"),
		"rounded-e":      ids("rounded-se", "rounded-ee"),
		"rounded-t":      ids("rounded-tl", "rounded-tr"),
		"rounded-r":      ids("rounded-tr", "rounded-br"),
		"rounded-b":      ids("rounded-br", "rounded-bl"),
		"rounded-l":      ids("rounded-tl", "rounded-bl"),
		"border-spacing": ids("border-spacing-x", "border-spacing-y"),
		"border-w": ids("border-w-x", "border-w-y", "border-w-s", "border-w-e", "border-w-t", "border-w-r",
			"border-w-b", "border-w-l"),
		"border-w-x": ids("border-w-r", "border-w-l"),
		"border-w-y": ids("border-w-t", "border-w-b"),
		"border-color": ids("border-color-x", "border-color-y", "border-color-s", "border-color-e",
			"border-color-t", "border-color-r", "border-color-b", "border-color-l"),
		"border-color-x": ids("border-color-r", "border-color-l"),
		"border-color-y": ids("border-color-t", "border-color-b"),
		"scroll-m": ids("scroll-mx", "scroll-my", "scroll-ms", "scroll-me", "scroll-mt", "scroll-mr",
			"scroll-mb", "scroll-ml"),
		"scroll-mx": ids("scroll-mr", "scroll-ml"),
		"scroll-my": ids("scroll-mt", "scroll-mb"),
		"scroll-p": ids("scroll-px", "scroll-py", "scroll-ps", "scroll-pe", "scroll-pt", "scroll-pr",
			"scroll-pb", "scroll-pl"),
		"scroll-px": ids("scroll-pr", "scroll-pl"),
		"scroll-py": ids("scroll-pt", "scroll-pb"),
		"touch":     ids("touch-x", "touch-y", "touch-pz"),
		"touch-x":   ids("touch"),
		"touch-y":   ids("touch"),
		"touch-pz":  ids("touch"),
	}
}

func defaultPostfixConflicts() map[ClassGroupID][]ClassGroupID {
	return map[ClassGroupID][]ClassGroupID{
		"font-size": ids("leading"),
	}
}
