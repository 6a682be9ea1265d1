package chart

// Palettes usable for the "colors" option, either as a list or by name.
var (
	Category10 []string
	Tableau10  []string
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

// Palette returns a copy of the named palette.
func Palette(name string) ([]string, bool) {
	var p []string
	switch name {
	case "category10":
		p = Category10
	case "tableau10":
		p = Tableau10
	default:
		return nil, false
	}
	return append([]string(nil), p...), true
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// colorAt cycles through colors.
func colorAt(colors []string, i int) string {
	if len(colors) == 0 {
		return "black"
	}
	return colors[i%len(colors)]
}
