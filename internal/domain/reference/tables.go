package reference

// country is one row of the NOC reference table. iso2 drives the flag glyph;
// an empty iso2 or iso3 means no flag or no map location respectively.
type country struct {
	noc       string
	continent Continent
	iso2      string
	iso3      string
}

var table = []country{
	// Europe
	{"GBR", Europe, "GB", "GBR"},
	{"FRA", Europe, "FR", "FRA"},
	{"GER", Europe, "DE", "DEU"},
	{"ITA", Europe, "IT", "ITA"},
	{"ESP", Europe, "ES", "ESP"},
	{"NED", Europe, "NL", "NLD"},
	{"POL", Europe, "PL", "POL"},
	{"UKR", Europe, "UA", "UKR"},
	{"BEL", Europe, "BE", "BEL"},
	{"SWE", Europe, "SE", "SWE"},
	{"NOR", Europe, "NO", "NOR"},
	{"DEN", Europe, "DK", "DNK"},
	{"FIN", Europe, "FI", "FIN"},
	{"SUI", Europe, "CH", "CHE"},
	{"AUT", Europe, "AT", "AUT"},
	{"POR", Europe, "PT", "PRT"},
	{"GRE", Europe, "GR", "GRC"},
	{"CZE", Europe, "CZ", "CZE"},
	{"ROU", Europe, "RO", "ROU"},
	{"HUN", Europe, "HU", "HUN"},
	{"IRL", Europe, "IE", "IRL"},
	{"SRB", Europe, "RS", "SRB"},
	{"CRO", Europe, "HR", "HRV"},
	{"SVK", Europe, "SK", "SVK"},
	{"SLO", Europe, "SI", "SVN"},
	{"BUL", Europe, "BG", "BGR"},
	{"LTU", Europe, "LT", "LTU"},
	{"LAT", Europe, "LV", "LVA"},
	{"EST", Europe, "EE", "EST"},
	{"BLR", Europe, "BY", "BLR"},
	{"MDA", Europe, "MD", "MDA"},
	{"GEO", Europe, "GE", "GEO"},
	{"ARM", Europe, "AM", "ARM"},
	{"AZE", Europe, "AZ", "AZE"},
	{"KOS", Europe, "XK", ""},
	{"MKD", Europe, "MK", "MKD"},
	{"ALB", Europe, "AL", "ALB"},
	{"BIH", Europe, "BA", "BIH"},
	{"MNE", Europe, "ME", "MNE"},
	{"CYP", Europe, "CY", "CYP"},
	{"MLT", Europe, "MT", "MLT"},
	{"LUX", Europe, "LU", "LUX"},
	{"ISL", Europe, "IS", "ISL"},
	{"AND", Europe, "AD", "AND"},
	{"SMR", Europe, "SM", "SMR"},
	{"MON", Europe, "MC", "MCO"},
	{"LIE", Europe, "LI", "LIE"},
	{"RUS", Europe, "RU", "RUS"},
	{"VAT", Europe, "VA", "VAT"},
	// Asia
	{"CHN", Asia, "CN", "CHN"},
	{"JPN", Asia, "JP", "JPN"},
	{"KOR", Asia, "KR", "KOR"},
	{"IND", Asia, "IN", "IND"},
	{"THA", Asia, "TH", "THA"},
	{"VIE", Asia, "VN", "VNM"},
	{"MAS", Asia, "MY", "MYS"},
	{"SGP", Asia, "SG", "SGP"},
	{"INA", Asia, "ID", "IDN"},
	{"PHI", Asia, "PH", "PHL"},
	{"TPE", Asia, "TW", "TWN"},
	{"HKG", Asia, "HK", "HKG"},
	{"KAZ", Asia, "KZ", "KAZ"},
	{"UZB", Asia, "UZ", "UZB"},
	{"IRN", Asia, "IR", "IRN"},
	{"IRQ", Asia, "IQ", "IRQ"},
	{"KSA", Asia, "SA", "SAU"},
	{"UAE", Asia, "AE", "ARE"},
	{"QAT", Asia, "QA", "QAT"},
	{"KUW", Asia, "KW", "KWT"},
	{"BRN", Asia, "BH", "BHR"},
	{"OMA", Asia, "OM", "OMN"},
	{"JOR", Asia, "JO", "JOR"},
	{"LBN", Asia, "LB", "LBN"},
	{"SYR", Asia, "SY", "SYR"},
	{"PAK", Asia, "PK", "PAK"},
	{"BAN", Asia, "BD", "BGD"},
	{"SRI", Asia, "LK", "LKA"},
	{"NEP", Asia, "NP", "NPL"},
	{"MYA", Asia, "MM", "MMR"},
	{"CAM", Asia, "KH", "KHM"},
	{"LAO", Asia, "LA", "LAO"},
	{"MGL", Asia, "MN", "MNG"},
	{"PRK", Asia, "KP", "PRK"},
	{"TJK", Asia, "TJ", "TJK"},
	{"TKM", Asia, "TM", "TKM"},
	{"KGZ", Asia, "KG", "KGZ"},
	{"AFG", Asia, "AF", "AFG"},
	{"MDV", Asia, "MV", "MDV"},
	{"BHU", Asia, "BT", "BTN"},
	{"BRU", Asia, "BN", "BRN"},
	{"TLS", Asia, "TL", "TLS"},
	{"ISR", Asia, "IL", "ISR"},
	{"PLE", Asia, "PS", "PSE"},
	{"YEM", Asia, "YE", "YEM"},
	{"IRI", Asia, "IR", "IRN"},
	{"LIB", Asia, "LB", "LBN"},
	// Africa
	{"RSA", Africa, "ZA", "ZAF"},
	{"EGY", Africa, "EG", "EGY"},
	{"NGR", Africa, "NG", "NGA"},
	{"KEN", Africa, "KE", "KEN"},
	{"ETH", Africa, "ET", "ETH"},
	{"MAR", Africa, "MA", "MAR"},
	{"ALG", Africa, "DZ", "DZA"},
	{"TUN", Africa, "TN", "TUN"},
	{"GHA", Africa, "GH", "GHA"},
	{"CIV", Africa, "CI", "CIV"},
	{"CMR", Africa, "CM", "CMR"},
	{"SEN", Africa, "SN", "SEN"},
	{"UGA", Africa, "UG", "UGA"},
	{"ZIM", Africa, "ZW", "ZWE"},
	{"TAN", Africa, "TZ", "TZA"},
	{"NAM", Africa, "NA", "NAM"},
	{"BOT", Africa, "BW", "BWA"},
	{"ZAM", Africa, "ZM", "ZMB"},
	{"MOZ", Africa, "MZ", "MOZ"},
	{"ANG", Africa, "AO", "AGO"},
	{"RWA", Africa, "RW", "RWA"},
	{"BUR", Africa, "BF", "BFA"},
	{"MLI", Africa, "ML", "MLI"},
	{"NIG", Africa, "NE", "NER"},
	{"BEN", Africa, "BJ", "BEN"},
	{"TOG", Africa, "TG", "TGO"},
	{"GAB", Africa, "GA", "GAB"},
	{"CGO", Africa, "CG", "COG"},
	{"COD", Africa, "CD", "COD"},
	{"MAD", Africa, "MG", "MDG"},
	{"MRI", Africa, "MU", "MUS"},
	{"SEY", Africa, "SC", "SYC"},
	{"CPV", Africa, "CV", "CPV"},
	{"GAM", Africa, "GM", "GMB"},
	{"GBS", Africa, "GW", "GNB"},
	{"GUI", Africa, "GN", "GIN"},
	{"LBR", Africa, "LR", "LBR"},
	{"SLE", Africa, "SL", "SLE"},
	{"SOM", Africa, "SO", "SOM"},
	{"SSD", Africa, "SS", "SSD"},
	{"SUD", Africa, "SD", "SDN"},
	{"ERI", Africa, "ER", "ERI"},
	{"DJI", Africa, "DJ", "DJI"},
	{"COM", Africa, "KM", "COM"},
	{"LBA", Africa, "LY", "LBY"},
	{"MWI", Africa, "MW", "MWI"},
	{"LES", Africa, "LS", "LSO"},
	{"SWZ", Africa, "SZ", "SWZ"},
	{"CAF", Africa, "CF", "CAF"},
	{"CHA", Africa, "TD", "TCD"},
	{"EQG", Africa, "GQ", "GNQ"},
	{"STP", Africa, "ST", "STP"},
	{"BDI", Africa, "BI", "BDI"},
	{"BFA", Africa, "BF", "BFA"},
	{"MAW", Africa, "MW", "MWI"},
	{"MTN", Africa, "MR", "MRT"},
	// North America
	{"USA", NorthAmerica, "US", "USA"},
	{"CAN", NorthAmerica, "CA", "CAN"},
	{"MEX", NorthAmerica, "MX", "MEX"},
	{"CUB", NorthAmerica, "CU", "CUB"},
	{"JAM", NorthAmerica, "JM", "JAM"},
	{"PUR", NorthAmerica, "PR", "PRI"},
	{"DOM", NorthAmerica, "DO", "DOM"},
	{"HAI", NorthAmerica, "HT", "HTI"},
	{"TTO", NorthAmerica, "TT", "TTO"},
	{"BAH", NorthAmerica, "BS", "BHS"},
	{"BAR", NorthAmerica, "BB", "BRB"},
	{"GRN", NorthAmerica, "GD", "GRD"},
	{"SKN", NorthAmerica, "KN", "KNA"},
	{"LCA", NorthAmerica, "LC", "LCA"},
	{"VIN", NorthAmerica, "VC", "VCT"},
	{"ANT", NorthAmerica, "AG", "ATG"},
	{"DMA", NorthAmerica, "DM", "DMA"},
	{"BIZ", NorthAmerica, "BZ", "BLZ"},
	{"GUA", NorthAmerica, "GT", "GTM"},
	{"HON", NorthAmerica, "HN", "HND"},
	{"ESA", NorthAmerica, "SV", "SLV"},
	{"NCA", NorthAmerica, "NI", "NIC"},
	{"CRC", NorthAmerica, "CR", "CRI"},
	{"PAN", NorthAmerica, "PA", "PAN"},
	{"BER", NorthAmerica, "BM", "BMU"},
	{"CAY", NorthAmerica, "KY", "CYM"},
	{"IVB", NorthAmerica, "VG", "VGB"},
	{"ISV", NorthAmerica, "VI", "VIR"},
	{"AHO", NorthAmerica, "NL", ""},
	{"ARU", NorthAmerica, "AW", "ABW"},
	// South America
	{"BRA", SouthAmerica, "BR", "BRA"},
	{"ARG", SouthAmerica, "AR", "ARG"},
	{"COL", SouthAmerica, "CO", "COL"},
	{"CHI", SouthAmerica, "CL", "CHL"},
	{"PER", SouthAmerica, "PE", "PER"},
	{"VEN", SouthAmerica, "VE", "VEN"},
	{"ECU", SouthAmerica, "EC", "ECU"},
	{"URU", SouthAmerica, "UY", "URY"},
	{"PAR", SouthAmerica, "PY", "PRY"},
	{"BOL", SouthAmerica, "BO", "BOL"},
	{"GUY", SouthAmerica, "GY", "GUY"},
	{"SUR", SouthAmerica, "SR", "SUR"},
	// Oceania
	{"AUS", Oceania, "AU", "AUS"},
	{"NZL", Oceania, "NZ", "NZL"},
	{"FIJ", Oceania, "FJ", "FJI"},
	{"PNG", Oceania, "PG", "PNG"},
	{"SAM", Oceania, "WS", "WSM"},
	{"TGA", Oceania, "TO", "TON"},
	{"VAN", Oceania, "VU", "VUT"},
	{"SOL", Oceania, "SB", "SLB"},
	{"FSM", Oceania, "FM", "FSM"},
	{"PLW", Oceania, "PW", "PLW"},
	{"MHL", Oceania, "MH", "MHL"},
	{"KIR", Oceania, "KI", "KIR"},
	{"NRU", Oceania, "NR", "NRU"},
	{"TUV", Oceania, "TV", "TUV"},
	{"COK", Oceania, "CK", "COK"},
	{"ASA", Oceania, "AS", "ASM"},
	{"GUM", Oceania, "GU", "GUM"},
}

var (
	continents = make(map[string]Continent, len(table))
	flags      = make(map[string]string, len(table))
	iso3       = make(map[string]string, len(table))
)

func init() {
	for _, c := range table {
		continents[c.noc] = c.continent
		if f := flagFromISO2(c.iso2); f != "" {
			flags[c.noc] = f
		}
		if c.iso3 != "" {
			iso3[c.noc] = c.iso3
		}
	}
}

// flagFromISO2 maps a two-letter region code onto its regional indicator pair.
func flagFromISO2(code string) string {
	if len(code) != 2 {
		return ""
	}
	const base = 0x1F1E6
	out := make([]rune, 0, 2)
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
		out = append(out, base+(r-'A'))
	}
	return string(out)
}
