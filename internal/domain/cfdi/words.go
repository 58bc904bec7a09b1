package cfdi

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	unidades = [...]string{"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
		"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
		"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco", "veintiséis",
		"veintisiete", "veintiocho", "veintinueve"}
	decenas  = [...]string{"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}
	centenas = [...]string{"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
		"seiscientos", "setecientos", "ochocientos", "novecientos"}
)

// AmountInWords escribe un importe en pesos con el formato de los CFDI:
// "TRESCIENTOS CUARENTA Y OCHO PESOS 00/100 M.N.". Se redondea a centavos.
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	pesos := amount.Truncate(0)
	centavos := amount.Sub(pesos).Mul(decimal.NewFromInt(100)).IntPart()

	n := pesos.IntPart()
	var words string
	switch {
	case n == 0:
		words = "cero pesos"
	case n == 1:
		words = "un peso"
	case n%1_000_000 == 0:
		words = apocope(IntegerInWords(n)) + " de pesos"
	default:
		words = apocope(IntegerInWords(n)) + " pesos"
	}
	return Upper(fmt.Sprintf("%s %02d/100 M.N.", words, centavos))
}

// escalas largas del español: cada una agrupa seis cifras de la anterior.
var escalas = [...]struct {
	valor       uint64
	uno, varios string
}{
	{1_000_000_000_000_000_000, "un trillón", "trillones"},
	{1_000_000_000_000, "un billón", "billones"},
	{1_000_000, "un millón", "millones"},
}

// IntegerInWords escribe n en español, en minúsculas. Cubre todo int64;
// los negativos llevan "menos" al frente.
func IntegerInWords(n int64) string {
	if n < 0 {
		// -(n+1)+1 evita el desbordamiento de math.MinInt64.
		return "menos " + naturalInWords(uint64(-(n+1))+1)
	}
	return naturalInWords(uint64(n))
}

func naturalInWords(n uint64) string {
	if n == 0 {
		return "cero"
	}
	var parts []string
	for _, e := range escalas {
		q := n / e.valor
		n %= e.valor
		switch {
		case q == 1:
			parts = append(parts, e.uno)
		case q > 1:
			parts = append(parts, apocope(thousandsInWords(q))+" "+e.varios)
		}
	}
	if n > 0 {
		parts = append(parts, thousandsInWords(n))
	}
	return strings.Join(parts, " ")
}

// thousandsInWords cubre 1..999999.
func thousandsInWords(n uint64) string {
	miles := n / 1000
	resto := n % 1000
	var parts []string
	switch {
	case miles == 1:
		parts = append(parts, "mil")
	case miles > 1:
		parts = append(parts, apocope(hundredsInWords(miles))+" mil")
	}
	if resto > 0 {
		parts = append(parts, hundredsInWords(resto))
	}
	return strings.Join(parts, " ")
}

// hundredsInWords cubre 1..999.
func hundredsInWords(n uint64) string {
	if n == 100 {
		return "cien"
	}
	c := n / 100
	r := n % 100
	var parts []string
	if c > 0 {
		parts = append(parts, centenas[c])
	}
	switch {
	case r == 0:
	case r < 30:
		parts = append(parts, unidades[r])
	default:
		d := decenas[r/10]
		if u := r % 10; u > 0 {
			d += " y " + unidades[u]
		}
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}

// apocope acorta "uno" delante de un sustantivo: "veintiuno" → "veintiún", "uno" → "un".
func apocope(s string) string {
	switch {
	case strings.HasSuffix(s, "veintiuno"):
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	case strings.HasSuffix(s, "uno"):
		return strings.TrimSuffix(s, "uno") + "un"
	}
	return s
}

// Upper normaliza texto capturado a mayúsculas respetando acentos.
// Un Caser no se comparte entre goroutines, por eso se construye en cada llamada.
func Upper(s string) string {
	return cases.Upper(language.LatinAmericanSpanish).String(strings.TrimSpace(s))
}
