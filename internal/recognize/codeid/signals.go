package codeid

// signalTable holds per-language weighted signals. Weights favor
// markers that rarely appear outside the language (package clauses,
// sigils, keywords with distinctive shapes) over ones shared across
// language families.
var signalTable = map[string][]signal{
	"go": {
		{expr: `(?m)^package \w+$`, weight: 4},
		{expr: `\bfunc \w+\(`, weight: 3},
		{expr: `:=`, weight: 2},
		{expr: `\bgo func\b|\bchan \w+|\bdefer \b`, weight: 2},
		{expr: `\bfmt\.\w+\(|\berr != nil\b`, weight: 2},
		{expr: `\btype \w+ (?:struct|interface) \{`, weight: 3},
	},
	"python": {
		{expr: `(?m)^\s*def \w+\(.*\):`, weight: 4},
		{expr: `(?m)^\s*(?:from \w[\w.]* )?import \w+`, weight: 3},
		{expr: `(?m)^\s*(?:elif|except)\b`, weight: 2},
		{expr: `\bself\b`, weight: 2},
		{expr: `\bprint\(`, weight: 1},
		{expr: `(?m)^\s*class \w+(?:\(.*\))?:`, weight: 3},
	},
	"javascript": {
		{expr: `\b(?:const|let) \w+ = `, weight: 2},
		{expr: `=>`, weight: 2},
		{expr: `\bconsole\.log\(`, weight: 3},
		{expr: `\bfunction\s*\w*\(`, weight: 2},
		{expr: `\brequire\(['"]|\bmodule\.exports\b`, weight: 3},
		{expr: `\bawait \w+|\basync (?:function|\()`, weight: 1},
	},
	"typescript": {
		{expr: `: (?:string|number|boolean|void|any)\b`, weight: 4},
		{expr: `\binterface \w+ \{`, weight: 3},
		{expr: `\b(?:const|let) \w+: \w+`, weight: 3},
		{expr: `\bexport (?:type|interface|const|function)\b`, weight: 2},
		{expr: `<\w+(?:, \w+)*>\(`, weight: 1},
	},
	"java": {
		{expr: `\bpublic (?:static )?(?:void|class|final)\b`, weight: 4},
		{expr: `\bSystem\.out\.println\(`, weight: 3},
		{expr: `(?m)^import java\.`, weight: 4},
		{expr: `\bnew \w+(?:<.*>)?\(`, weight: 1},
		{expr: `\b@Override\b`, weight: 2},
	},
	"c": {
		{expr: `(?m)^#include <\w+\.h>`, weight: 4},
		{expr: `\bprintf\(|\bmalloc\(|\bfree\(`, weight: 2},
		{expr: `\bint main\s*\(`, weight: 3},
		{expr: `\w+ \*\w+|\*\w+ = `, weight: 1},
		{expr: `\bstruct \w+ \{`, weight: 1},
	},
	"cpp": {
		{expr: `(?m)^#include <(?:iostream|vector|string|map)>`, weight: 4},
		{expr: `\bstd::\w+`, weight: 3},
		{expr: `\bcout <<|\bcin >>`, weight: 3},
		{expr: `\btemplate\s*<`, weight: 2},
		{expr: `\bnamespace \w+`, weight: 1},
	},
	"csharp": {
		{expr: `(?m)^using System`, weight: 4},
		{expr: `\bConsole\.WriteLine\(`, weight: 3},
		{expr: `\bpublic (?:sealed |partial )?class \w+`, weight: 2},
		{expr: `\bvar \w+ = new \w+`, weight: 1},
		{expr: `\bnamespace \w+(?:\.\w+)*`, weight: 1},
	},
	"rust": {
		{expr: `\bfn \w+\(`, weight: 3},
		{expr: `\blet mut \w+|\blet \w+: `, weight: 2},
		{expr: `\bimpl(?:<.*>)? \w+`, weight: 3},
		{expr: `\bprintln!\(|\bformat!\(|\bvec!\[`, weight: 3},
		{expr: `\bmatch \w+ \{|\bpub fn\b`, weight: 2},
		{expr: `&str\b|&mut \w+|::<`, weight: 2},
	},
	"ruby": {
		{expr: `(?m)^\s*def \w+[\w?!]*\s*$`, weight: 3},
		{expr: `(?m)^\s*end\s*$`, weight: 2},
		{expr: `\bputs |\battr_(?:reader|writer|accessor)\b`, weight: 2},
		{expr: `\brequire ['"]|\bmodule \w+`, weight: 2},
		{expr: `@\w+ = |\.each do \|`, weight: 2},
	},
	"php": {
		{expr: `<\?php`, weight: 5},
		{expr: `\$\w+ = `, weight: 2},
		{expr: `\becho \$?\w+|\b->\w+\(`, weight: 1},
		{expr: `\bfunction \w+\(\$`, weight: 2},
	},
	"swift": {
		{expr: `\bfunc \w+\(.*\) -> \w+`, weight: 3},
		{expr: `\b(?:let|var) \w+(?:: \w+)? = `, weight: 1},
		{expr: `\bguard let\b|\bif let\b`, weight: 3},
		{expr: `(?m)^import (?:Foundation|UIKit|SwiftUI)\b`, weight: 4},
		{expr: `\bprint\("`, weight: 1},
	},
	"kotlin": {
		{expr: `\bfun \w+\(`, weight: 3},
		{expr: `\bval \w+ = |\bvar \w+ = `, weight: 2},
		{expr: `\bdata class \w+\(`, weight: 3},
		{expr: `\bwhen \(|\bcompanion object\b`, weight: 2},
		{expr: `(?m)^import kotlin(?:x)?\.`, weight: 3},
	},
	"lua": {
		{expr: `\blocal \w+ = `, weight: 3},
		{expr: `(?m)^\s*function \w+[.:]?\w*\(`, weight: 2},
		{expr: `(?m)^\s*end\s*$`, weight: 1},
		{expr: `\bipairs\(|\bpairs\(|\brequire\("`, weight: 2},
		{expr: `\bnil\b.*==|~=`, weight: 1},
	},
	"shell": {
		{expr: `(?m)^#!/(?:usr/)?bin/(?:env )?(?:ba|z)?sh`, weight: 5},
		{expr: `(?m)^\s*if \[\[? `, weight: 3},
		{expr: `\$\{\w+\}|\$\(\w+`, weight: 2},
		{expr: `(?m)^\s*(?:fi|esac|done)\s*$`, weight: 2},
		{expr: `\becho "|\bexport \w+=`, weight: 1},
	},
	"sql": {
		{expr: `(?i)\bSELECT\b.*\bFROM\b`, weight: 4},
		{expr: `(?i)\b(?:INSERT INTO|UPDATE|DELETE FROM)\b`, weight: 3},
		{expr: `(?i)\bCREATE (?:TABLE|INDEX|VIEW)\b`, weight: 3},
		{expr: `(?i)\b(?:WHERE|GROUP BY|ORDER BY|JOIN)\b`, weight: 2},
	},
	"html": {
		{expr: `(?i)<!DOCTYPE html>`, weight: 5},
		{expr: `(?i)<(?:div|span|body|head|html|p|a)\b[^>]*>`, weight: 3},
		{expr: `(?i)</(?:div|span|body|head|html|p|a)>`, weight: 2},
		{expr: `\b(?:class|href|src)="`, weight: 1},
	},
	"css": {
		{expr: `[.#]?[\w-]+\s*\{[^}]*:[^}]*\}`, weight: 3},
		{expr: `\b(?:color|margin|padding|display|font-size)\s*:`, weight: 3},
		{expr: `@media\b|@import\b|!important\b`, weight: 2},
	},
	"json": {
		{expr: `^\s*\{[\s\S]*\}\s*$|^\s*\[[\s\S]*\]\s*$`, weight: 2},
		{expr: `"\w+"\s*:\s*(?:"|\d|\{|\[|true|false|null)`, weight: 3},
	},
	"yaml": {
		{expr: `(?m)^\w[\w-]*:\s*(?:$|\S)`, weight: 2},
		{expr: `(?m)^\s+- \w`, weight: 2},
		{expr: `(?m)^---\s*$`, weight: 3},
	},
	"xml": {
		{expr: `<\?xml version=`, weight: 5},
		{expr: `<[\w:]+(?:\s+[\w:-]+="[^"]*")*\s*/?>`, weight: 2},
		{expr: `</[\w:]+>`, weight: 1},
	},
	"markdown": {
		{expr: `(?m)^#{1,6} \S`, weight: 3},
		{expr: `\[[^\]]+\]\([^)]+\)`, weight: 2},
		{expr: "(?m)^```", weight: 3},
		{expr: `(?m)^[-*] \S`, weight: 1},
	},
}
