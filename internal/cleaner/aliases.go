package cleaner

// Correction tables for recurring OCR corruption. The source PDF keeps the
// same physical layout between runs, so the same garbled strings reappear
// verbatim; an exact-match table beats generic fuzzy repair here. Keys are
// normalized garbled text, values the canonical replacement. Identity pairs
// are omitted so that cleaning stays idempotent.

// GingerSpec is forced onto every ginger row regardless of what the OCR
// produced; the extractor shreds that particular cell beyond repair.
const GingerSpec = "Fairly well-matured, medium (150–300 g)"

var defaultItemAliases = map[string]string{
	"Eg‘r;':IPlcmc Shoulder (Kasim),":  "Pork Picnic Shoulder, Local (Kasim)",
	"Eg‘r;':IPicnic Shoulder (Kasim),": "Pork Picnic Shoulder, Local (Kasim)",
	"r;;l;rtx::w Shoulder (Kasim),":    "Pork Picnic Shoulder, Imported (Kasim)",
	"T:::i:gl (Yellow-Fin Tuna),":      "Tambakol (Yellow-Fin Tuna) Imported",
	"Sen el (Rl Flnslun).":             "Tambakol (Yellow-Fin Tuna) Local",
	"g‘;::;’;g Oil (Palm Olein, Jolly": "Cooking Oil (Palm Olein, Jolly)",
	"Cooking 0Oil (Palm)":              "Cooking Oil (Palm)",
}

var defaultSpecAliases = map[string]string{
	`fifif?fi’;ffiig&"fi. i`:             "Medium (8–10 cm diameter/bunch hd)",
	"ffig. i":                            "Medium (8–10 cm diameter/bunch hd)",
	"(ffig. i)":                          "Medium (8–10 cm diameter/bunch hd)",
	"m:?r::?;r(/%::ciflx 4":              "Medium (8–10 cm diameter/bunch hd)",
	"mrr(/%cix 4":                        "Medium (8–10 cm diameter/bunch hd)",
	`E‘f ;‘g’_’;gg"g':; uiked, Medtiti`:  GingerSpec,
	`ff ;‘g’_’ 3‘3'?;:; tured, Medium`:   GingerSpec,
	`'(:f;g’_’a,""(‘)';';:]amred' Medium`: GingerSpec,
	"(fga,()amred Medium":                GingerSpec,
	`(l\idx:ir::::r(/i(:}r;:hs g;]m`:     "Medium (301–450 g/bunch)",
	"10-12 pes/kg":                       "10–12 pcs/kg",
	"13-15 pes/kg":                       "13–15 pcs/kg",
	"15-18 pes/kg":                       "15–18 pcs/kg",
	"1,000 mi/bottle":                    "1,000 ml/bottle",
	"1-19% bran streak":                  "1-19 bran streak",
}

// mergeAliases layers user-supplied corrections over the defaults without
// mutating either input.
func mergeAliases(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
