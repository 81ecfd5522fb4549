package manhtml

import (
	"regexp"
	"strings"
)

// backslashMark protects a literal backslash produced by translation from
// being rescanned by later passes; it is restored in expandSpecial.
const backslashMark = ""

// namedEscapes maps groff glyph names to output entities. The same table
// serves both the two-character \(xx form and the bracketed \[xxx] form.
var namedEscapes = map[string]string{
	// dashes and hyphens
	"hy": "&#8208;",
	"en": "&ndash;",
	"em": "&mdash;",

	// quotes and simple marks
	"aq": "&#39;",
	"dq": "&quot;",
	"oq": "&lsquo;",
	"cq": "&rsquo;",
	"lq": "&ldquo;",
	"rq": "&rdquo;",
	"Bq": "&bdquo;",
	"bq": "&sbquo;",
	"ga": "&#96;",
	"ha": "^",
	"ti": "~",
	"at": "@",
	"sh": "#",
	"sl": "/",
	"rs": backslashMark,
	"bb": "&brvbar;",
	"or": "|",

	// typographic symbols
	"bu": "&bull;",
	"ci": "&#9675;",
	"dg": "&dagger;",
	"dd": "&Dagger;",
	"sc": "&sect;",
	"ps": "&para;",
	"pc": "&middot;",
	"de": "&deg;",
	"fm": "&prime;",
	"sd": "&Prime;",
	"r!": "&iexcl;",
	"r?": "&iquest;",
	"%0": "&permil;",
	"lz": "&loz;",
	"co": "&copy;",
	"rg": "&reg;",
	"tm": "&trade;",
	"Of": "&ordf;",
	"Om": "&ordm;",
	"mc": "&micro;",
	"lh": "&#9756;",
	"rh": "&#9758;",

	// brackets
	"lB": "[",
	"rB": "]",
	"lC": "{",
	"rC": "}",
	"la": "&lang;",
	"ra": "&rang;",

	// currency
	"Do": "$",
	"ct": "&cent;",
	"Po": "&pound;",
	"Ye": "&yen;",
	"Fn": "&fnof;",
	"Cs": "&curren;",
	"Eu": "&euro;",
	"eu": "&euro;",

	// arrows
	"<-": "&larr;",
	"->": "&rarr;",
	"<>": "&harr;",
	"ua": "&uarr;",
	"da": "&darr;",
	"va": "&#8597;",
	"lA": "&lArr;",
	"rA": "&rArr;",
	"hA": "&hArr;",
	"uA": "&uArr;",
	"dA": "&dArr;",
	"vA": "&#8661;",

	// mathematics and logic
	"pl": "+",
	"mi": "&minus;",
	"-+": "&#8723;",
	"+-": "&plusmn;",
	"eq": "=",
	"==": "&equiv;",
	"!=": "&ne;",
	"<=": "&le;",
	">=": "&ge;",
	"<<": "&#8810;",
	">>": "&#8811;",
	"mu": "&times;",
	"di": "&divide;",
	"f/": "&frasl;",
	"**": "&lowast;",
	"ap": "&sim;",
	"~~": "&cong;",
	"~=": "&cong;",
	"=~": "&cong;",
	"pt": "&prop;",
	"es": "&empty;",
	"mo": "&isin;",
	"nm": "&notin;",
	"sb": "&sub;",
	"sp": "&sup;",
	"nb": "&nsub;",
	"ib": "&sube;",
	"ip": "&supe;",
	"ca": "&cap;",
	"cu": "&cup;",
	"/_": "&ang;",
	"pp": "&perp;",
	"is": "&int;",
	"if": "&infin;",
	"sr": "&radic;",
	"pd": "&part;",
	"c*": "&otimes;",
	"c+": "&oplus;",
	"no": "&not;",
	"te": "&exist;",
	"fa": "&forall;",
	"AN": "&and;",
	"OR": "&or;",
	"tf": "&there4;",
	"3d": "&there4;",
	"Ah": "&alefsym;",
	"Im": "&image;",
	"Re": "&real;",
	"wp": "&weierp;",

	// fractions and superscripts
	"12": "&frac12;",
	"14": "&frac14;",
	"34": "&frac34;",
	"18": "&frac18;",
	"38": "&frac38;",
	"58": "&frac58;",
	"78": "&frac78;",
	"S1": "&sup1;",
	"S2": "&sup2;",
	"S3": "&sup3;",

	// card symbols
	"CL": "&clubs;",
	"SP": "&spades;",
	"HE": "&hearts;",
	"DI": "&diams;",

	// ligatures and letters
	"ff": "&#64256;",
	"fi": "&#64257;",
	"fl": "&#64258;",
	"Fi": "&#64259;",
	"Fl": "&#64260;",
	"AE": "&AElig;",
	"ae": "&aelig;",
	"OE": "&OElig;",
	"oe": "&oelig;",
	"ss": "&szlig;",
	"IJ": "&#306;",
	"ij": "&#307;",
	"TP": "&THORN;",
	"Tp": "&thorn;",
	"-D": "&ETH;",
	"Sd": "&eth;",

	// accented letters
	"'A": "&Aacute;",
	"'E": "&Eacute;",
	"'I": "&Iacute;",
	"'O": "&Oacute;",
	"'U": "&Uacute;",
	"'Y": "&Yacute;",
	"'a": "&aacute;",
	"'e": "&eacute;",
	"'i": "&iacute;",
	"'o": "&oacute;",
	"'u": "&uacute;",
	"'y": "&yacute;",
	"`A": "&Agrave;",
	"`E": "&Egrave;",
	"`I": "&Igrave;",
	"`O": "&Ograve;",
	"`U": "&Ugrave;",
	"`a": "&agrave;",
	"`e": "&egrave;",
	"`i": "&igrave;",
	"`o": "&ograve;",
	"`u": "&ugrave;",
	"^A": "&Acirc;",
	"^E": "&Ecirc;",
	"^I": "&Icirc;",
	"^O": "&Ocirc;",
	"^U": "&Ucirc;",
	"^a": "&acirc;",
	"^e": "&ecirc;",
	"^i": "&icirc;",
	"^o": "&ocirc;",
	"^u": "&ucirc;",
	":A": "&Auml;",
	":E": "&Euml;",
	":I": "&Iuml;",
	":O": "&Ouml;",
	":U": "&Uuml;",
	":a": "&auml;",
	":e": "&euml;",
	":i": "&iuml;",
	":o": "&ouml;",
	":u": "&uuml;",
	":y": "&yuml;",
	"~A": "&Atilde;",
	"~N": "&Ntilde;",
	"~O": "&Otilde;",
	"~a": "&atilde;",
	"~n": "&ntilde;",
	"~o": "&otilde;",
	",C": "&Ccedil;",
	",c": "&ccedil;",
	"/L": "&#321;",
	"/l": "&#322;",
	"/O": "&Oslash;",
	"/o": "&oslash;",

	// greek
	"*a": "&alpha;",
	"*b": "&beta;",
	"*g": "&gamma;",
	"*d": "&delta;",
	"*e": "&epsilon;",
	"*z": "&zeta;",
	"*y": "&eta;",
	"*h": "&theta;",
	"*i": "&iota;",
	"*k": "&kappa;",
	"*l": "&lambda;",
	"*m": "&mu;",
	"*n": "&nu;",
	"*c": "&xi;",
	"*o": "&omicron;",
	"*p": "&pi;",
	"*r": "&rho;",
	"*s": "&sigma;",
	"*t": "&tau;",
	"*u": "&upsilon;",
	"*f": "&phi;",
	"*x": "&chi;",
	"*q": "&psi;",
	"*w": "&omega;",
	"*A": "&Alpha;",
	"*B": "&Beta;",
	"*G": "&Gamma;",
	"*D": "&Delta;",
	"*E": "&Epsilon;",
	"*Z": "&Zeta;",
	"*Y": "&Eta;",
	"*H": "&Theta;",
	"*I": "&Iota;",
	"*K": "&Kappa;",
	"*L": "&Lambda;",
	"*M": "&Mu;",
	"*N": "&Nu;",
	"*C": "&Xi;",
	"*O": "&Omicron;",
	"*P": "&Pi;",
	"*R": "&Rho;",
	"*S": "&Sigma;",
	"*T": "&Tau;",
	"*U": "&Upsilon;",
	"*F": "&Phi;",
	"*X": "&Chi;",
	"*Q": "&Psi;",
	"*W": "&Omega;",
	"ts": "&sigmaf;",
}

// predefinedStrings maps \*(xx string names to output entities.
var predefinedStrings = map[string]string{
	"lq": "&ldquo;",
	"rq": "&rdquo;",
	"Tm": "&trade;",
	"dg": "&dagger;",
	"aq": "&#39;",
}

// expandSpecial applies the ordered special-character passes. The order is
// a correctness invariant: later passes must not re-expand output of
// earlier ones. Unknown escape names pass through untranslated.
func expandSpecial(text string) string {
	text = strings.ReplaceAll(text, `\&`, "")
	text = strings.ReplaceAll(text, `\-`, `\(en`)
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = expandNamed(text)
	text = expandBracketed(text)
	text = strings.ReplaceAll(text, backslashMark, `\`)
	text = expandStrings(text)
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// expandNamed replaces two-character \(xx escapes.
func expandNamed(text string) string {
	if !strings.Contains(text, `\(`) {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		if text[i] == '\\' && i+3 < len(text) && text[i+1] == '(' {
			if repl, ok := namedEscapes[text[i+2:i+4]]; ok {
				b.WriteString(repl)
				i += 4
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// expandBracketed replaces bracketed \[xxx] escapes via the same table.
func expandBracketed(text string) string {
	if !strings.Contains(text, `\[`) {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		if text[i] == '\\' && i+1 < len(text) && text[i+1] == '[' {
			if j := strings.IndexByte(text[i+2:], ']'); j >= 0 {
				if repl, ok := namedEscapes[text[i+2:i+2+j]]; ok {
					b.WriteString(repl)
					i += j + 3
					continue
				}
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// expandStrings replaces predefined \*(xx string escapes.
func expandStrings(text string) string {
	if !strings.Contains(text, `\*(`) {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		if text[i] == '\\' && i+4 < len(text) && text[i+1] == '*' && text[i+2] == '(' {
			if repl, ok := predefinedStrings[text[i+3:i+5]]; ok {
				b.WriteString(repl)
				i += 5
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// urlPattern matches bare URLs with a restricted path grammar, ending in
// an alphanumeric or slash so trailing punctuation stays outside the link.
var urlPattern = regexp.MustCompile(`https?://[A-Za-z0-9\-._/%?=&#+~]*[A-Za-z0-9/]`)

// urlExceptions are fixed literals never turned into links. They are
// deliberately exact strings, not a general exclusion mechanism.
var urlExceptions = []string{
	"http://www.example.com",
	"https://www.example.com",
}

// linkifyURLs wraps bare http(s) URLs in expanded plain-text lines with a
// hyperlink. It is not applied inside headings, items, or table cells.
func linkifyURLs(text string) string {
	if !strings.Contains(text, "http") {
		return text
	}
	return urlPattern.ReplaceAllStringFunc(text, func(m string) string {
		for _, exception := range urlExceptions {
			if strings.HasPrefix(m, exception) {
				return m
			}
		}
		return `<a href="` + m + `">` + m + `</a>`
	})
}
