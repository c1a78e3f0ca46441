package ubl

import "strings"

const DefaultUnitCode = "C62"

var unitNames = map[string]string{
	"C62": "Adet",
	"EA":  "Adet",
	"MTR": "Metre",
	"KGM": "Kilogram",
	"LTR": "Litre",
	"MTK": "Metrekare",
	"MTQ": "Metreküp",
	"GRM": "Gram",
	"TNE": "Ton",
	"SET": "Takım",
	"PK":  "Paket",
	"CT":  "Kutu",
	"CN":  "Kutu",
	"BG":  "Torba",
	"BX":  "Kasa",
	"PC":  "Parça",
	"PR":  "Çift",
	"PA":  "Palet",
	"TU":  "Tüp",
	"BO":  "Şişe",
	"DZN": "Düzine",
	"GRO": "Gros",
	"HUR": "Saat",
	"DAY": "Gün",
	"MON": "Ay",
	"ANN": "Yıl",
}

// UnitName maps a UN/ECE unit code to its Turkish name. Unknown codes read as Adet.
func UnitName(code string) string {
	if name, ok := unitNames[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return name
	}

	return "Adet"
}
