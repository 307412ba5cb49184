package config

// stylesheetSnippets is the builtin snippet dictionary for CSS-like
// syntaxes. A value of the form `property:value` declares a property
// snippet; `|`-separated value alternatives become resolvable keywords
// for that property. Anything else is a raw snippet emitted verbatim.
var stylesheetSnippets = map[string]string{
	"@f":          "@font-face {\n\tfont-family: ${1};\n\tsrc: url(${2});\n}",
	"@i|@import":  "@import url(${0});",
	"@kf":         "@keyframes ${1:identifier} {\n\t${2}\n}",
	"@m|@media":   "@media ${1:screen} {\n\t${0}\n}",

	"bg":   "background:#${1:000}",
	"bgc":  "background-color:#${1:fff}",
	"bgi":  "background-image:url(${0})",
	"bgp":  "background-position:${1:0} ${2:0}",
	"bgr":  "background-repeat:no-repeat|repeat-x|repeat-y|repeat",
	"bgs":  "background-size:contain|cover",
	"bga":  "background-attachment:fixed|scroll",

	"bd":   "border:${1:1px} ${2:solid} ${3:#000}",
	"bdt":  "border-top:${1:1px} ${2:solid} ${3:#000}",
	"bdr":  "border-right:${1:1px} ${2:solid} ${3:#000}",
	"bdb":  "border-bottom:${1:1px} ${2:solid} ${3:#000}",
	"bdl":  "border-left:${1:1px} ${2:solid} ${3:#000}",
	"bdrs": "border-radius",
	"bdc":  "border-color:#${1:000}",
	"bds":  "border-style:solid|dashed|dotted|double|none|hidden",
	"bdw":  "border-width",

	"bxsh": "box-shadow:${1:inset }${2:hoff} ${3:voff} ${4:blur} #${5:000}|none",
	"bxz":  "box-sizing:border-box|content-box",

	"c":   "color:#${1:000}",
	"cl":  "clear:both|left|right|none",
	"ct":  "content",
	"cur": "cursor:pointer|auto|default|crosshair|move|not-allowed|text|wait",

	"d": "display:block|none|flex|inline-flex|inline|inline-block|grid|inline-grid|table|table-cell|table-row|list-item",

	"fl": "float:left|right|none",

	"ff": "font-family:serif|sans-serif|cursive|fantasy|monospace",
	"fs": "font-style:italic|normal|oblique",
	"fw": "font-weight:normal|bold|bolder|lighter",
	"fz": "font-size",

	"h":   "height",
	"w":   "width",
	"mah": "max-height",
	"maw": "max-width",
	"mih": "min-height",
	"miw": "min-width",

	"lh":  "line-height",
	"lts": "letter-spacing",

	"m":  "margin",
	"mt": "margin-top",
	"mr": "margin-right",
	"mb": "margin-bottom",
	"ml": "margin-left",

	"p":  "padding",
	"pt": "padding-top",
	"pr": "padding-right",
	"pb": "padding-bottom",
	"pl": "padding-left",

	"op": "opacity",
	"ov": "overflow:hidden|visible|scroll|auto",
	"ovx": "overflow-x:hidden|visible|scroll|auto",
	"ovy": "overflow-y:hidden|visible|scroll|auto",

	"pos": "position:relative|absolute|fixed|static|sticky",
	"t":   "top",
	"r":   "right",
	"b":   "bottom",
	"l":   "left",

	"ta": "text-align:left|center|right|justify",
	"td": "text-decoration:none|underline|overline|line-through",
	"tt": "text-transform:uppercase|lowercase|capitalize|none",
	"ts": "text-shadow:${1:hoff} ${2:voff} ${3:blur} ${4:#000}",
	"ti": "text-indent",

	"v":  "visibility:hidden|visible|collapse",
	"va": "vertical-align:top|middle|bottom|baseline|text-top|text-bottom|sub|super",
	"ws": "white-space:nowrap|pre|pre-wrap|pre-line|normal",
	"wob": "word-break:break-all|keep-all|normal",

	"z":  "z-index",
	"zm": "zoom:1",

	"trf":  "transform:translate(${1:x}, ${2:y})|scale(${1:x}, ${2:y})|rotate(${1:angle})",
	"trs":  "transition:${1:prop} ${2:time}",

	"ai": "align-items:flex-start|flex-end|center|baseline|stretch",
	"ac": "align-content:flex-start|flex-end|center|space-between|space-around|stretch",
	"as": "align-self:auto|flex-start|flex-end|center|baseline|stretch",
	"jc": "justify-content:flex-start|flex-end|center|space-between|space-around",
	"fx": "flex",
	"fxb": "flex-basis",
	"fxd": "flex-direction:row|row-reverse|column|column-reverse",
	"fxw": "flex-wrap:nowrap|wrap|wrap-reverse",
	"ord": "order",

	"gap": "gap",
	"colm": "columns",
	"gtc": "grid-template-columns:repeat(${0})",
	"gtr": "grid-template-rows:repeat(${0})",

	"ap": "appearance:none",
	"us": "user-select:none|auto|text|all",
	"wm": "writing-mode:horizontal-tb|vertical-rl|vertical-lr",
}
