package phone

// Template holds the national and regional display shapes for a country.
// "{area}" and "{local}" are substituted with the split digit groups.
type Template struct {
	Regional string
	National string
}

// templates maps ISO alpha-2 codes to display templates. Countries not
// listed fall back to libphonenumber formatting.
var templates = map[string]Template{
	"DE": {Regional: "+49 {area} {local}", National: "+49 {area} {local}"},
	"ES": {Regional: "+34 {area} {local}", National: "+34 {area} {local}"},
	"FR": {Regional: "+33 {area} {local}", National: "+33 {area} {local}"},
	"GB": {Regional: "+44 {area} {local}", National: "+44 {area} {local}"},
	"IE": {Regional: "+353 {area} {local}", National: "+353 {area} {local}"},
	"IN": {Regional: "+91 {area} {local}", National: "+91 {area} {local}"},
	"IT": {Regional: "+39 {area} {local}", National: "+39 {area} {local}"},
	"NL": {Regional: "+31 {area} {local}", National: "+31 {area} {local}"},
	"US": {Regional: "+1 ({area}) {local}", National: "+1 ({area}) {local}"},
}
