package taxonomy

import v "github.com/arthur-debert/twmerge/pkg/validators"

// Theme scales shared by several groups.
var (
	colors                  = Defs(v.ArbitraryColor, v.Any)
	spacing                 = Defs(v.Length, v.ArbitraryLength)
	spacingWithArbitrary    = Defs(v.ArbitraryValue, spacing)
	spacingWithAuto         = Defs("auto", v.ArbitraryValue, spacing)
	numberAndArbitrary      = Defs(v.Number, v.ArbitraryValue)
	numberWithAuto          = Defs("auto", v.Number, v.ArbitraryValue)
	zeroAndEmpty            = Defs("", "0", v.ArbitraryValue)
	lengthWithEmpty         = Defs("", v.Length, v.ArbitraryLength)
	blur                    = Defs("none", "", v.TshirtSize, v.ArbitraryValue)
	borderRadius            = Defs("none", "", "full", v.TshirtSize, v.ArbitraryValue)
	gradientStopPositions   = Defs(v.Percent, v.ArbitraryLength)
	opacity                 = numberAndArbitrary
	positions               = []string{"bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top"}
	overflow                = []string{"auto", "hidden", "clip", "visible", "scroll"}
	overscroll              = []string{"auto", "contain", "none"}
	lineStyles              = []string{"solid", "dashed", "dotted", "double", "none"}
	blendModes              = []string{"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity"}
	align                   = []string{"start", "end", "center", "between", "around", "evenly", "stretch"}
	breaks                  = []string{"auto", "avoid", "all", "avoid-page", "page", "left", "right", "column"}
	gridSpanWithArbitrary   = Defs("auto", Sub("span", "full", v.Integer, v.ArbitraryValue), v.ArbitraryValue)
	gridRowSpanWithArbitary = Defs("auto", Sub("span", v.Integer, v.ArbitraryValue), v.ArbitraryValue)
)

// DefaultConfig returns the Tailwind CSS v3 class groups and their conflicts.
// Each call returns a fresh copy that callers may extend.
func DefaultConfig() Config {
	return Config{
		Groups:           defaultGroups(),
		Conflicts:        defaultConflicts(),
		PostfixConflicts: defaultPostfixConflicts(),
	}
}

func defaultGroups() []Group {
	g := NewGroup
	return []Group{
		// Layout
		g("aspect", Sub("aspect", "auto", "square", "video", v.ArbitraryValue)),
		g("container", "container"),
		g("columns", Sub("columns", v.TshirtSize, v.Number, v.ArbitraryValue)),
		g("break-after", Sub("break-after", breaks)),
		g("break-before", Sub("break-before", breaks)),
		g("break-inside", Sub("break-inside", "auto", "avoid", "avoid-page", "avoid-column")),
		g("box-decoration", Sub("box-decoration", "slice", "clone")),
		g("box", Sub("box", "border", "content")),
		g("display", "block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
			"table-caption", "table-cell", "table-column", "table-column-group", "table-footer-group",
			"table-header-group", "table-row-group", "table-row", "flow-root", "grid", "inline-grid",
			"contents", "list-item", "hidden"),
		g("float", Sub("float", "right", "left", "none", "start", "end")),
		g("clear", Sub("clear", "left", "right", "both", "none", "start", "end")),
		g("isolation", "isolate", "isolation-auto"),
		g("object-fit", Sub("object", "contain", "cover", "fill", "none", "scale-down")),
		g("object-position", Sub("object", positions, v.ArbitraryValue)),
		g("overflow", Sub("overflow", overflow)),
		g("overflow-x", Sub("overflow-x", overflow)),
		g("overflow-y", Sub("overflow-y", overflow)),
		g("overscroll", Sub("overscroll", overscroll)),
		g("overscroll-x", Sub("overscroll-x", overscroll)),
		g("overscroll-y", Sub("overscroll-y", overscroll)),
		g("position", "static", "fixed", "absolute", "relative", "sticky"),
		g("inset", Sub("inset", spacingWithAuto)),
		g("inset-x", Sub("inset-x", spacingWithAuto)),
		g("inset-y", Sub("inset-y", spacingWithAuto)),
		g("start", Sub("start", spacingWithAuto)),
		g("end", Sub("end", spacingWithAuto)),
		g("top", Sub("top", spacingWithAuto)),
		g("right", Sub("right", spacingWithAuto)),
		g("bottom", Sub("bottom", spacingWithAuto)),
		g("left", Sub("left", spacingWithAuto)),
		g("visibility", "visible", "invisible", "collapse"),
		g("z", Sub("z", "auto", v.Integer, v.ArbitraryValue)),

		// Flexbox and grid
		g("basis", Sub("basis", spacingWithAuto)),
		g("flex-direction", Sub("flex", "row", "row-reverse", "col", "col-reverse")),
		g("flex-wrap", Sub("flex", "wrap", "wrap-reverse", "nowrap")),
		g("flex", Sub("flex", "1", "auto", "initial", "none", v.ArbitraryValue)),
		g("grow", Sub("grow", zeroAndEmpty)),
		g("shrink", Sub("shrink", zeroAndEmpty)),
		g("order", Sub("order", "first", "last", "none", v.Integer, v.ArbitraryValue)),
		g("grid-cols", Sub("grid-cols", v.Any)),
		g("col-start-end", Sub("col", gridSpanWithArbitrary)),
		g("col-start", Sub("col-start", numberWithAuto)),
		g("col-end", Sub("col-end", numberWithAuto)),
		g("grid-rows", Sub("grid-rows", v.Any)),
		g("row-start-end", Sub("row", gridRowSpanWithArbitary)),
		g("row-start", Sub("row-start", numberWithAuto)),
		g("row-end", Sub("row-end", numberWithAuto)),
		g("grid-flow", Sub("grid-flow", "row", "col", "dense", "row-dense", "col-dense")),
		g("auto-cols", Sub("auto-cols", "auto", "min", "max", "fr", v.ArbitraryValue)),
		g("auto-rows", Sub("auto-rows", "auto", "min", "max", "fr", v.ArbitraryValue)),
		g("gap", Sub("gap", spacingWithArbitrary)),
		g("gap-x", Sub("gap-x", spacingWithArbitrary)),
		g("gap-y", Sub("gap-y", spacingWithArbitrary)),
		g("justify-content", Sub("justify", "normal", align)),
		g("justify-items", Sub("justify-items", "start", "end", "center", "stretch")),
		g("justify-self", Sub("justify-self", "auto", "start", "end", "center", "stretch")),
		g("align-content", Sub("content", "normal", align, "baseline")),
		g("align-items", Sub("items", "start", "end", "center", "baseline", "stretch")),
		g("align-self", Sub("self", "auto", "start", "end", "center", "stretch", "baseline")),
		g("place-content", Sub("place-content", align, "baseline")),
		g("place-items", Sub("place-items", "start", "end", "center", "baseline", "stretch")),
		g("place-self", Sub("place-self", "auto", "start", "end", "center", "stretch")),

		// Spacing
		g("p", Sub("p", spacingWithArbitrary)),
		g("px", Sub("px", spacingWithArbitrary)),
		g("py", Sub("py", spacingWithArbitrary)),
		g("ps", Sub("ps", spacingWithArbitrary)),
		g("pe", Sub("pe", spacingWithArbitrary)),
		g("pt", Sub("pt", spacingWithArbitrary)),
		g("pr", Sub("pr", spacingWithArbitrary)),
		g("pb", Sub("pb", spacingWithArbitrary)),
		g("pl", Sub("pl", spacingWithArbitrary)),
		g("m", Sub("m", spacingWithAuto)),
		g("mx", Sub("mx", spacingWithAuto)),
		g("my", Sub("my", spacingWithAuto)),
		g("ms", Sub("ms", spacingWithAuto)),
		g("me", Sub("me", spacingWithAuto)),
		g("mt", Sub("mt", spacingWithAuto)),
		g("mr", Sub("mr", spacingWithAuto)),
		g("mb", Sub("mb", spacingWithAuto)),
		g("ml", Sub("ml", spacingWithAuto)),
		g("space-x", Sub("space-x", spacingWithArbitrary)),
		g("space-x-reverse", "space-x-reverse"),
		g("space-y", Sub("space-y", spacingWithArbitrary)),
		g("space-y-reverse", "space-y-reverse"),

		// Sizing
		g("w", Sub("w", "auto", "min", "max", "fit", "svw", "lvw", "dvw", v.ArbitraryValue, spacing)),
		g("min-w", Sub("min-w", v.ArbitraryValue, spacing, "min", "max", "fit")),
		g("max-w", Sub("max-w", v.ArbitraryValue, spacing, "none", "full", "min", "max", "fit", "prose",
			Sub("screen", v.TshirtSize), v.TshirtSize)),
		g("h", Sub("h", v.ArbitraryValue, spacing, "auto", "min", "max", "fit", "svh", "lvh", "dvh")),
		g("min-h", Sub("min-h", v.ArbitraryValue, spacing, "min", "max", "fit", "svh", "lvh", "dvh")),
		g("max-h", Sub("max-h", v.ArbitraryValue, spacing, "min", "max", "fit", "svh", "lvh", "dvh")),
		g("size", Sub("size", v.ArbitraryValue, spacing, "auto", "min", "max", "fit")),

		// Typography
		g("font-size", Sub("text", "base", v.TshirtSize, v.ArbitraryLength)),
		g("font-smoothing", "antialiased", "subpixel-antialiased"),
		g("font-style", "italic", "not-italic"),
		g("font-weight", Sub("font", "thin", "extralight", "light", "normal", "medium", "semibold", "bold",
			"extrabold", "black", v.ArbitraryNumber)),
		g("font-family", Sub("font", v.Any)),
		g("fvn-normal", "normal-nums"),
		g("fvn-ordinal", "ordinal"),
		g("fvn-slashed-zero", "slashed-zero"),
		g("fvn-figure", "lining-nums", "oldstyle-nums"),
		g("fvn-spacing", "proportional-nums", "tabular-nums"),
		g("fvn-fraction", "diagonal-fractions", "stacked-fractions"),
		g("tracking", Sub("tracking", "tighter", "tight", "normal", "wide", "wider", "widest", v.ArbitraryValue)),
		g("line-clamp", Sub("line-clamp", "none", v.Number, v.ArbitraryNumber)),
		g("leading", Sub("leading", "none", "tight", "snug", "normal", "relaxed", "loose", v.Length, v.ArbitraryValue)),
		g("list-image", Sub("list-image", "none", v.ArbitraryValue)),
		g("list-style-type", Sub("list", "none", "disc", "decimal", v.ArbitraryValue)),
		g("list-style-position", Sub("list", "inside", "outside")),
		g("placeholder-color", Sub("placeholder", colors)),
		g("placeholder-opacity", Sub("placeholder-opacity", opacity)),
		g("text-alignment", Sub("text", "left", "center", "right", "justify", "start", "end")),
		g("text-color", Sub("text", colors)),
		g("text-opacity", Sub("text-opacity", opacity)),
		g("text-decoration", "underline", "overline", "line-through", "no-underline"),
		g("text-decoration-style", Sub("decoration", lineStyles, "wavy")),
		g("text-decoration-thickness", Sub("decoration", "auto", "from-font", v.Length, v.ArbitraryLength)),
		g("underline-offset", Sub("underline-offset", "auto", v.Length, v.ArbitraryValue)),
		g("text-decoration-color", Sub("decoration", colors)),
		g("text-transform", "uppercase", "lowercase", "capitalize", "normal-case"),
		g("text-overflow", "truncate", "text-ellipsis", "text-clip"),
		g("text-wrap", Sub("text", "wrap", "nowrap", "balance", "pretty")),
		g("indent", Sub("indent", spacingWithArbitrary)),
		g("vertical-align", Sub("align", "baseline", "top", "middle", "bottom", "text-top", "text-bottom",
			"sub", "super", v.ArbitraryValue)),
		g("whitespace", Sub("whitespace", "normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces")),
		g("break", Sub("break", "normal", "words", "all", "keep")),
		g("hyphens", Sub("hyphens", "none", "manual", "auto")),
		g("content", Sub("content", "none", v.ArbitraryValue)),

		// Backgrounds
		g("bg-attachment", Sub("bg", "fixed", "local", "scroll")),
		g("bg-clip", Sub("bg-clip", "border", "padding", "content", "text")),
		g("bg-opacity", Sub("bg-opacity", opacity)),
		g("bg-origin", Sub("bg-origin", "border", "padding", "content")),
		g("bg-position", Sub("bg", positions, v.ArbitraryPosition)),
		g("bg-repeat", Sub("bg", "no-repeat", Sub("repeat", "", "x", "y", "round", "space"))),
		g("bg-size", Sub("bg", "auto", "cover", "contain", v.ArbitrarySize)),
		g("bg-image", Sub("bg", "none", Sub("gradient-to", "t", "tr", "r", "br", "b", "bl", "l", "tl"), v.ArbitraryImage)),
		g("bg-color", Sub("bg", colors)),
		g("gradient-from-pos", Sub("from", gradientStopPositions)),
		g("gradient-via-pos", Sub("via", gradientStopPositions)),
		g("gradient-to-pos", Sub("to", gradientStopPositions)),
		g("gradient-from", Sub("from", colors)),
		g("gradient-via", Sub("via", colors)),
		g("gradient-to", Sub("to", colors)),

		// Borders
		g("rounded", Sub("rounded", borderRadius)),
		g("rounded-s", Sub("rounded-s", borderRadius)),
		g("rounded-e", Sub("rounded-e", borderRadius)),
		g("rounded-t", Sub("rounded-t", borderRadius)),
		g("rounded-r", Sub("rounded-r", borderRadius)),
		g("rounded-b", Sub("rounded-b", borderRadius)),
		g("rounded-l", Sub("rounded-l", borderRadius)),
		g("rounded-ss", Sub("rounded-ss", borderRadius)),
		g("rounded-se", Sub("rounded-se", borderRadius)),
		g("rounded-ee", Sub("rounded-ee", borderRadius)),
		g("rounded-es", Sub("rounded-es", borderRadius)),
		g("rounded-tl", Sub("rounded-tl", borderRadius)),
		g("rounded-tr", Sub("rounded-tr", borderRadius)),
		g("rounded-br", Sub("rounded-br", borderRadius)),
		g("rounded-bl", Sub("rounded-bl", borderRadius)),
		g("border-w", Sub("border", lengthWithEmpty)),
		g("border-w-x", Sub("border-x", lengthWithEmpty)),
		g("border-w-y", Sub("border-y", lengthWithEmpty)),
		g("border-w-s", Sub("border-s", lengthWithEmpty)),
		g("border-w-e", Sub("border-e", lengthWithEmpty)),
		g("border-w-t", Sub("border-t", lengthWithEmpty)),
		g("border-w-r", Sub("border-r", lengthWithEmpty)),
		g("border-w-b", Sub("border-b", lengthWithEmpty)),
		g("border-w-l", Sub("border-l", lengthWithEmpty)),
		g("border-opacity", Sub("border-opacity", opacity)),
		g("border-style", Sub("border", lineStyles, "hidden")),
		g("divide-x", Sub("divide-x", lengthWithEmpty)),
		g("divide-x-reverse", "divide-x-reverse"),
		g("divide-y", Sub("divide-y", lengthWithEmpty)),
		g("divide-y-reverse", "divide-y-reverse"),
		g("divide-opacity", Sub("divide-opacity", opacity)),
		g("divide-style", Sub("divide", lineStyles)),
		g("border-color", Sub("border", colors)),
		g("border-color-x", Sub("border-x", colors)),
		g("border-color-y", Sub("border-y", colors)),
		g("border-color-s", Sub("border-s", colors)),
		g("border-color-e", Sub("border-e", colors)),
		g("border-color-t", Sub("border-t", colors)),
		g("border-color-r", Sub("border-r", colors)),
		g("border-color-b", Sub("border-b", colors)),
		g("border-color-l", Sub("border-l", colors)),
		g("divide-color", Sub("divide", colors)),
		g("outline-style", Sub("outline", "", lineStyles)),
		g("outline-offset", Sub("outline-offset", v.Length, v.ArbitraryValue)),
		g("outline-w", Sub("outline", v.Length, v.ArbitraryLength)),
		g("outline-color", Sub("outline", colors)),
		g("ring-w", Sub("ring", lengthWithEmpty)),
		g("ring-w-inset", "ring-inset"),
		g("ring-color", Sub("ring", colors)),
		g("ring-opacity", Sub("ring-opacity", opacity)),
		g("ring-offset-w", Sub("ring-offset", v.Length, v.ArbitraryLength)),
		g("ring-offset-color", Sub("ring-offset", colors)),

		// Effects
		g("shadow", Sub("shadow", "", "inner", "none", v.TshirtSize, v.ArbitraryShadow)),
		g("shadow-color", Sub("shadow", v.Any)),
		g("opacity", Sub("opacity", opacity)),
		g("mix-blend", Sub("mix-blend", blendModes, "plus-lighter", "plus-darker")),
		g("bg-blend", Sub("bg-blend", blendModes)),

		// Filters
		g("filter", Sub("filter", "", "none")),
		g("blur", Sub("blur", blur)),
		g("brightness", Sub("brightness", numberAndArbitrary)),
		g("contrast", Sub("contrast", numberAndArbitrary)),
		g("drop-shadow", Sub("drop-shadow", "", "none", v.TshirtSize, v.ArbitraryValue)),
		g("grayscale", Sub("grayscale", zeroAndEmpty)),
		g("hue-rotate", Sub("hue-rotate", numberAndArbitrary)),
		g("invert", Sub("invert", zeroAndEmpty)),
		g("saturate", Sub("saturate", numberAndArbitrary)),
		g("sepia", Sub("sepia", zeroAndEmpty)),
		g("backdrop-filter", Sub("backdrop-filter", "", "none")),
		g("backdrop-blur", Sub("backdrop-blur", blur)),
		g("backdrop-brightness", Sub("backdrop-brightness", numberAndArbitrary)),
		g("backdrop-contrast", Sub("backdrop-contrast", numberAndArbitrary)),
		g("backdrop-grayscale", Sub("backdrop-grayscale", zeroAndEmpty)),
		g("backdrop-hue-rotate", Sub("backdrop-hue-rotate", numberAndArbitrary)),
		g("backdrop-invert", Sub("backdrop-invert", zeroAndEmpty)),
		g("backdrop-opacity", Sub("backdrop-opacity", opacity)),
		g("backdrop-saturate", Sub("backdrop-saturate", numberAndArbitrary)),
		g("backdrop-sepia", Sub("backdrop-sepia", zeroAndEmpty)),

		// Tables
		g("border-collapse", Sub("border", "collapse", "separate")),
		g("border-spacing", Sub("border-spacing", spacingWithArbitrary)),
		g("border-spacing-x", Sub("border-spacing-x", spacingWithArbitrary)),
		g("border-spacing-y", Sub("border-spacing-y", spacingWithArbitrary)),
		g("table-layout", Sub("table", "auto", "fixed")),
		g("caption", Sub("caption", "top", "bottom")),

		// Transitions and animation
		g("transition", Sub("transition", "none", "all", "", "colors", "opacity", "shadow", "transform", v.ArbitraryValue)),
		g("duration", Sub("duration", numberAndArbitrary)),
		g("ease", Sub("ease", "linear", "in", "out", "in-out", v.ArbitraryValue)),
		g("delay", Sub("delay", numberAndArbitrary)),
		g("animate", Sub("animate", "none", "spin", "ping", "pulse", "bounce", v.ArbitraryValue)),

		// Transforms
		g("transform", Sub("transform", "", "gpu", "none")),
		g("scale", Sub("scale", numberAndArbitrary)),
		g("scale-x", Sub("scale-x", numberAndArbitrary)),
		g("scale-y", Sub("scale-y", numberAndArbitrary)),
		g("rotate", Sub("rotate", v.Integer, v.ArbitraryValue)),
		g("translate-x", Sub("translate-x", spacingWithArbitrary)),
		g("translate-y", Sub("translate-y", spacingWithArbitrary)),
		g("skew-x", Sub("skew-x", numberAndArbitrary)),
		g("skew-y", Sub("skew-y", numberAndArbitrary)),
		g("transform-origin", Sub("origin", "center", "top", "top-right", "right", "bottom-right", "bottom",
			"bottom-left", "left", "top-left", v.ArbitraryValue)),

		// Interactivity
		g("accent", Sub("accent", "auto", colors)),
		g("appearance", Sub("appearance", "none", "auto")),
		g("cursor", Sub("cursor", "auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed",
			"none", "context-menu", "progress", "cell", "crosshair", "vertical-text", "alias", "copy", "no-drop",
			"grab", "grabbing", "all-scroll", "col-resize", "row-resize", "n-resize", "e-resize", "s-resize",
			"w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize", "ew-resize", "ns-resize",
			"nesw-resize", "nwse-resize", "zoom-in", "zoom-out", v.ArbitraryValue)),
		g("caret-color", Sub("caret", colors)),
		g("pointer-events", Sub("pointer-events", "none", "auto")),
		g("resize", Sub("resize", "none", "y", "x", "")),
		g("scroll-behavior", Sub("scroll", "auto", "smooth")),
		g("scroll-m", Sub("scroll-m", spacingWithArbitrary)),
		g("scroll-mx", Sub("scroll-mx", spacingWithArbitrary)),
		g("scroll-my", Sub("scroll-my", spacingWithArbitrary)),
		g("scroll-ms", Sub("scroll-ms", spacingWithArbitrary)),
		g("scroll-me", Sub("scroll-me", spacingWithArbitrary)),
		g("scroll-mt", Sub("scroll-mt", spacingWithArbitrary)),
		g("scroll-mr", Sub("scroll-mr", spacingWithArbitrary)),
		g("scroll-mb", Sub("scroll-mb", spacingWithArbitrary)),
		g("scroll-ml", Sub("scroll-ml", spacingWithArbitrary)),
		g("scroll-p", Sub("scroll-p", spacingWithArbitrary)),
		g("scroll-px", Sub("scroll-px", spacingWithArbitrary)),
		g("scroll-py", Sub("scroll-py", spacingWithArbitrary)),
		g("scroll-ps", Sub("scroll-ps", spacingWithArbitrary)),
		g("scroll-pe", Sub("scroll-pe", spacingWithArbitrary)),
		g("scroll-pt", Sub("scroll-pt", spacingWithArbitrary)),
		g("scroll-pr", Sub("scroll-pr", spacingWithArbitrary)),
		g("scroll-pb", Sub("scroll-pb", spacingWithArbitrary)),
		g("scroll-pl", Sub("scroll-pl", spacingWithArbitrary)),
		g("snap-align", Sub("snap", "start", "end", "center", "align-none")),
		g("snap-stop", Sub("snap", "normal", "always")),
		g("snap-type", Sub("snap", "none", "x", "y", "both")),
		g("snap-strictness", Sub("snap", "mandatory", "proximity")),
		g("touch", Sub("touch", "auto", "none", "manipulation")),
		g("touch-x", Sub("touch-pan", "x", "left", "right")),
		g("touch-y", Sub("touch-pan", "y", "up", "down")),
		g("touch-pz", "touch-pinch-zoom"),
		g("select", Sub("select", "none", "text", "all", "auto")),
		g("will-change", Sub("will-change", "auto", "scroll", "contents", "transform", v.ArbitraryValue)),

		// SVG
		g("fill", Sub("fill", colors, "none")),
		g("stroke-w", Sub("stroke", v.Length, v.ArbitraryLength, v.ArbitraryNumber)),
		g("stroke", Sub("stroke", colors, "none")),

		// Accessibility
		g("sr", "sr-only", "not-sr-only"),
		g("forced-color-adjust", Sub("forced-color-adjust", "auto", "none")),
	}
}
