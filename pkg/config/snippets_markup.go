package config

// markupSnippets is the builtin snippet dictionary for HTML-like
// syntaxes. Keys may list `|`-separated aliases; values are abbreviation
// templates re-parsed by the markup snippet resolver.
var markupSnippets = map[string]string{
	"a":            "a[href]",
	"a:blank":      "a[href='http://${0}' target='_blank' rel='noopener noreferrer']",
	"a:link":       "a[href='http://${0}']",
	"a:mail":       "a[href='mailto:${0}']",
	"a:tel":        "a[href='tel:+${0}']",
	"abbr":         "abbr[title]",
	"acr|acronym":  "acronym[title]",
	"base":         "base[href]/",
	"basefont":     "basefont/",
	"br":           "br/",
	"frame":        "frame/",
	"hr":           "hr/",
	"bdo":          "bdo[dir]",
	"bdo:r":        "bdo[dir=rtl]",
	"bdo:l":        "bdo[dir=ltr]",
	"col":          "col/",
	"link":         "link[rel=stylesheet href]/",
	"link:css":     "link[href='${1:style}.css']",
	"link:favicon": "link[rel='shortcut icon' type=image/x-icon href='${1:favicon.ico}']",
	"link:rss":     "link[rel=alternate type=application/rss+xml title=RSS href='${1:rss.xml}']",
	"meta":         "meta/",
	"meta:utf":     "meta[http-equiv=Content-Type content='text/html;charset=UTF-8']",
	"meta:vp":      "meta[name=viewport content='width=${1:device-width}, initial-scale=${2:1.0}']",
	"meta:charset": "meta[charset=${charset}]",
	"style":        "style",
	"script":       "script",
	"script:src":   "script[src]",
	"img":          "img[src alt]/",
	"img:srcset|ri:d": "img[srcset src alt]/",
	"src|source":   "source/",
	"iframe":       "iframe[src frameborder=0]",
	"embed":        "embed[src type]/",
	"object":       "object[data type]",
	"map":          "map[name]",
	"area":         "area[shape coords href alt]/",
	"form":         "form[action]",
	"form:get":     "form[method=get]",
	"form:post":    "form[method=post]",
	"label":        "label[for]",
	"input":        "input[type=${1:text}]/",
	"inp":          "input[type=${1:text} name=${2} id=${2}]",
	"input:h|input:hidden":           "input[type=hidden name]",
	"input:t|input:text":             "inp[type=text]",
	"input:search":                   "inp[type=search]",
	"input:email":                    "inp[type=email]",
	"input:url":                      "inp[type=url]",
	"input:p|input:password":         "inp[type=password]",
	"input:number":                   "inp[type=number]",
	"input:date":                     "inp[type=date]",
	"input:time":                     "inp[type=time]",
	"input:c|input:checkbox":         "inp[type=checkbox]",
	"input:r|input:radio":            "inp[type=radio]",
	"input:f|input:file":             "inp[type=file]",
	"input:s|input:submit":           "input[type=submit value]",
	"input:b|input:btn|input:button": "input[type=button value]",
	"btn|button":                     "button[type=${1:button}]",
	"btn:s|button:submit":            "button[type=submit]",
	"btn:r|button:reset":             "button[type=reset]",
	"btn:d|button:disabled":          "button[disabled.]",
	"fst:d|fset:d":                   "fieldset[disabled.]",
	"select":                         "select[name=${1} id=${1}]",
	"select:d|select:disabled":       "select[disabled.]",
	"opt|option":                     "option[value]",
	"textarea":                       "textarea[name=${1} id=${1}]",
	"video":                          "video[src]",
	"audio":                          "audio[src]",
	"html:xml":                       "html[xmlns=http://www.w3.org/1999/xhtml]",
	"keygen":                         "keygen/",

	"doc": "html[lang=${lang}]>(head>meta[charset=${charset}]+meta[name=viewport content='width=device-width, initial-scale=1.0']+title{${1:Document}})+body",
	"!|html:5": "!!!+doc",
	"!!!":      "{<!DOCTYPE html>}",
	"c":        "{<!-- ${0} -->}",
	"cc:ie":    "{<!--[if IE]>${0}<![endif]-->}",
	"cc:noie":  "{<!--[if !IE]><!-->${0}<!--<![endif]-->}",

	"ol+":        "ol>li",
	"ul+":        "ul>li",
	"dl+":        "dl>dt+dd",
	"map+":       "map>area",
	"table+":     "table>tr>td",
	"colgroup+":  "colgroup>col",
	"colg+":      "colgroup>col",
	"tr+":        "tr>td",
	"select+":    "select>option*2",
	"optgroup+":  "optgroup>option",
	"optg+":      "optgroup>option",

	"bq":     "blockquote",
	"fig":    "figure",
	"figc":   "figcaption",
	"pic":    "picture",
	"ifr":    "iframe",
	"emb":    "embed",
	"obj":    "object",
	"cap":    "caption",
	"colg":   "colgroup",
	"fst|fset": "fieldset",
	"optg":   "optgroup",
	"tarea":  "textarea",
	"leg":    "legend",
	"sect":   "section",
	"art":    "article",
	"hdr":    "header",
	"ftr":    "footer",
	"adr":    "address",
	"dlg":    "dialog",
	"str":    "strong",
	"prog":   "progress",
	"mn|tem": "main",
	"datal":  "datalist",
	"kg":     "keygen",
	"out":    "output",
	"det":    "details",
	"sum":    "summary",
}

// xslSnippets overlays markupSnippets for the xsl syntax.
var xslSnippets = map[string]string{
	"tm|tmatch": "xsl:template[match mode]",
	"tn|tname":  "xsl:template[name]",
	"call":      "xsl:call-template[name]",
	"ap":        "xsl:apply-templates[select mode]",
	"api":       "xsl:apply-imports",
	"imp":       "xsl:import[href]",
	"inc":       "xsl:include[href]",
	"ch":        "xsl:choose",
	"wh|xsl:when": "xsl:when[test]",
	"ot":        "xsl:otherwise",
	"if":        "xsl:if[test]",
	"par":       "xsl:param[name]",
	"pare":      "xsl:param[name select]",
	"var":       "xsl:variable[name]",
	"vare":      "xsl:variable[name select]",
	"wp":        "xsl:with-param[name select]",
	"key":       "xsl:key[name match use]",
	"elem":      "xsl:element[name]",
	"attr":      "xsl:attribute[name]",
	"attrs":     "xsl:attribute-set[name]",
	"cp":        "xsl:copy[select]",
	"co":        "xsl:copy-of[select]",
	"val":       "xsl:value-of[select]",
	"each|for":  "xsl:for-each[select]",
	"tex":       "xsl:text",
	"com":       "xsl:comment",
	"msg":       "xsl:message[terminate=no]",
	"fall":      "xsl:fallback",
	"num":       "xsl:number[value]",
	"nam":       "namespace-alias[stylesheet-prefix result-prefix]",
	"pres":      "xsl:preserve-space[elements]",
	"strip":     "xsl:strip-space[elements]",
	"proc":      "xsl:processing-instruction[name]",
	"sort":      "xsl:sort[select order]",
}

// pugSnippets overlays markupSnippets for the pug syntax.
var pugSnippets = map[string]string{
	"!|!!!": "{doctype html}",
}
