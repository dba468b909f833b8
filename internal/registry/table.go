package registry

import "github.com/nutrilens/backend/internal/domain"

// definitions is the static nutrient table. Order matters: it fixes both
// iteration order and alias priority on overlapping spellings.
var definitions = []Entry{
	// Energy
	{Key: "energy", Meta: domain.NutrientMetadata{
		Label:        "Energy",
		Unit:         "kcal",
		ClinicalPath: "tee",
		Aliases:      []string{"energy", "energy-kcal", "Energy", "Energy-kcal", "energy_kCal"},
		Category:     domain.CategoryMacro,
	}},

	// Carbohydrate group
	{Key: "carbohydrate", Meta: domain.NutrientMetadata{
		Label:        "Carbohydrate",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.total",
		Aliases:      []string{"carbohydrates", "carbohydrates_100g", "Carbohydrate, by difference", "Carbohydrate, by summation", "carbohydrate"},
		Category:     domain.CategoryMacro,
	}},
	{Key: "starch", Meta: domain.NutrientMetadata{
		Label:        "Starch",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.starch",
		Aliases:      []string{"starch", "Starch"},
		Category:     domain.CategoryMacro,
		Parent:       "carbohydrate",
	}},
	{Key: "fiber", Meta: domain.NutrientMetadata{
		Label:        "Dietary Fiber",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.fiber.total",
		Aliases:      []string{"fiber", "Fiber, total dietary", "Total dietary fiber (AOAC 2011.25)", "fiber_total"},
		Category:     domain.CategoryMacro,
		Parent:       "carbohydrate",
	}},
	{Key: "fiber_soluble", Meta: domain.NutrientMetadata{
		Label:        "Soluble Fiber",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.fiber.soluble",
		Aliases:      []string{"fiber_soluble", "Fiber, soluble"},
		Category:     domain.CategoryMacro,
		Parent:       "fiber",
	}},
	{Key: "fiber_insoluble", Meta: domain.NutrientMetadata{
		Label:        "Insoluble Fiber",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.fiber.insoluble",
		Aliases:      []string{"fiber_insoluble", "Fiber, insoluble"},
		Category:     domain.CategoryMacro,
		Parent:       "fiber",
	}},
	{Key: "sugar", Meta: domain.NutrientMetadata{
		Label:        "Total Sugars",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.total",
		Aliases:      []string{"sugars", "Sugars, Total", "Total Sugars", "sugars_100g"},
		Category:     domain.CategoryMacro,
		Parent:       "carbohydrate",
	}},
	{Key: "sugar_added", Meta: domain.NutrientMetadata{
		Label:        "Added Sugars",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.added",
		Aliases:      []string{"added_sugar", "added sugars", "Sugars, added", "sugars_added", "addedSugar"},
		Category:     domain.CategoryMacro,
		Parent:       "sugar",
	}},
	{Key: "sugar_alcohol", Meta: domain.NutrientMetadata{
		Label:        "Sugar Alcohol",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.alcohol",
		Aliases:      []string{"sugar_alcohol", "Sugar alcohols"},
		Category:     domain.CategoryMacro,
		Parent:       "sugar",
	}},
	{Key: "fructose", Meta: domain.NutrientMetadata{
		Label:        "Fructose",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.fructose",
		Aliases:      []string{"fructose", "Fructose"},
		Category:     domain.CategoryMacro,
		Parent:       "sugar",
	}},
	{Key: "sucrose", Meta: domain.NutrientMetadata{
		Label:        "Sucrose",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.sucrose",
		Aliases:      []string{"sucrose", "Sucrose"},
		Category:     domain.CategoryMacro,
		Parent:       "sugar",
	}},
	{Key: "glucose", Meta: domain.NutrientMetadata{
		Label:        "Glucose",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.glucose",
		Aliases:      []string{"glucose", "Glucose"},
		Category:     domain.CategoryMacro,
		Parent:       "sugar",
	}},
	{Key: "lactose", Meta: domain.NutrientMetadata{
		Label:        "Lactose",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.lactose",
		Aliases:      []string{"lactose", "Lactose"},
		Category:     domain.CategoryMacro,
		Parent:       "sugar",
	}},
	{Key: "maltose", Meta: domain.NutrientMetadata{
		Label:        "Maltose",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.maltose",
		Aliases:      []string{"maltose", "Maltose"},
		Category:     domain.CategoryMacro,
		Parent:       "sugar",
	}},
	{Key: "galactose", Meta: domain.NutrientMetadata{
		Label:        "Galactose",
		Unit:         "g",
		ClinicalPath: "nutrients.carbohydrate.sugar.galactose",
		Aliases:      []string{"galactose", "Galactose"},
		Category:     domain.CategoryMacro,
		Parent:       "sugar",
	}},

	// Protein group
	{Key: "protein", Meta: domain.NutrientMetadata{
		Label:        "Protein",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.total",
		Aliases:      []string{"protein", "proteins", "Protein"},
		Category:     domain.CategoryMacro,
	}},
	{Key: "alanine", Meta: domain.NutrientMetadata{
		Label:        "Alanine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.alanine",
		Aliases:      []string{"alanine", "Alanine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "arginine", Meta: domain.NutrientMetadata{
		Label:        "Arginine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.arginine",
		Aliases:      []string{"arginine", "Arginine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "aspartic_acid", Meta: domain.NutrientMetadata{
		Label:        "Aspartic Acid",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.asparticAcid",
		Aliases:      []string{"aspartic_acid", "Aspartic acid", "asparticacid"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "cystine", Meta: domain.NutrientMetadata{
		Label:        "Cystine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.cystine",
		Aliases:      []string{"cystine", "Cystine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "glutamic_acid", Meta: domain.NutrientMetadata{
		Label:        "Glutamic Acid",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.glutamicAcid",
		Aliases:      []string{"glutamic_acid", "Glutamic acid", "glutamicacid"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "glutamine", Meta: domain.NutrientMetadata{
		Label:        "Glutamine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.glutamine",
		Aliases:      []string{"glutamine", "Glutamine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "glycine", Meta: domain.NutrientMetadata{
		Label:        "Glycine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.glycine",
		Aliases:      []string{"glycine", "Glycine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "histidine", Meta: domain.NutrientMetadata{
		Label:        "Histidine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.histidine",
		Aliases:      []string{"histidine", "Histidine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "hydroxyproline", Meta: domain.NutrientMetadata{
		Label:        "Hydroxyproline",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.hydroxyproline",
		Aliases:      []string{"hydroxyproline", "Hydroxyproline"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "isoleucine", Meta: domain.NutrientMetadata{
		Label:        "Isoleucine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.isoleucine",
		Aliases:      []string{"isoleucine", "Isoleucine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "leucine", Meta: domain.NutrientMetadata{
		Label:        "Leucine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.leucine",
		Aliases:      []string{"leucine", "Leucine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "lysine", Meta: domain.NutrientMetadata{
		Label:        "Lysine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.lysine",
		Aliases:      []string{"lysine", "Lysine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "methionine", Meta: domain.NutrientMetadata{
		Label:        "Methionine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.methionine",
		Aliases:      []string{"methionine", "Methionine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "phenylalanine", Meta: domain.NutrientMetadata{
		Label:        "Phenylalanine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.phenylalanine",
		Aliases:      []string{"phenylalanine", "Phenylalanine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "proline", Meta: domain.NutrientMetadata{
		Label:        "Proline",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.proline",
		Aliases:      []string{"proline", "Proline"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "serine", Meta: domain.NutrientMetadata{
		Label:        "Serine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.serine",
		Aliases:      []string{"serine", "Serine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "threonine", Meta: domain.NutrientMetadata{
		Label:        "Threonine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.threonine",
		Aliases:      []string{"threonine", "Threonine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "tryptophan", Meta: domain.NutrientMetadata{
		Label:        "Tryptophan",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.tryptophan",
		Aliases:      []string{"tryptophan", "Tryptophan"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "tyrosine", Meta: domain.NutrientMetadata{
		Label:        "Tyrosine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.tyrosine",
		Aliases:      []string{"tyrosine", "Tyrosine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},
	{Key: "valine", Meta: domain.NutrientMetadata{
		Label:        "Valine",
		Unit:         "g",
		ClinicalPath: "nutrients.protein.valine",
		Aliases:      []string{"valine", "Valine"},
		Category:     domain.CategoryAminoAcid,
		Parent:       "protein",
	}},

	// Fat group
	{Key: "fat", Meta: domain.NutrientMetadata{
		Label:        "Total Fat",
		Unit:         "g",
		ClinicalPath: "nutrients.fat.total",
		Aliases:      []string{"fat", "Total lipid (fat)", "Total fat (NLEA)", "total fat", "FAT"},
		Category:     domain.CategoryMacro,
	}},
	{Key: "fat_saturated", Meta: domain.NutrientMetadata{
		Label:        "Saturated Fat",
		Unit:         "g",
		ClinicalPath: "nutrients.fat.saturated",
		Aliases:      []string{"fat_saturated", "Fatty acids, total saturated", "saturated-fat", "saturated fat"},
		Category:     domain.CategoryMacro,
		Parent:       "fat",
	}},
	{Key: "fat_trans", Meta: domain.NutrientMetadata{
		Label:        "Trans Fat",
		Unit:         "g",
		ClinicalPath: "nutrients.fat.trans",
		Aliases:      []string{"fat_trans", "Fatty acids, total trans", "trans-fat", "trans fat"},
		Category:     domain.CategoryMacro,
		Parent:       "fat",
	}},
	{Key: "fat_monounsaturated", Meta: domain.NutrientMetadata{
		Label:        "Monounsaturated Fat",
		Unit:         "g",
		ClinicalPath: "nutrients.fat.monounsaturated",
		Aliases:      []string{"fat_monounsaturated", "Fatty acids, total monounsaturated", "monounsaturated"},
		Category:     domain.CategoryMacro,
		Parent:       "fat",
	}},
	{Key: "fat_polyunsaturated", Meta: domain.NutrientMetadata{
		Label:        "Polyunsaturated Fat",
		Unit:         "g",
		ClinicalPath: "nutrients.fat.polyunsaturated",
		Aliases:      []string{"fat_polyunsaturated", "Fatty acids, total polyunsaturated", "polyunsaturated"},
		Category:     domain.CategoryMacro,
		Parent:       "fat",
	}},
	{Key: "omega3", Meta: domain.NutrientMetadata{
		Label:        "Omega-3",
		Unit:         "g",
		ClinicalPath: "nutrients.fat.omega3",
		Aliases:      []string{"omega3", "omega-3", "alpha-linolenic", "PUFA 18:3 n-3 c,c,c (ALA)", "PUFA 20:5 n-3 (EPA)", "PUFA 22:6 n-3 (DHA)"},
		Category:     domain.CategoryMacro,
		Parent:       "fat",
	}},
	{Key: "omega6", Meta: domain.NutrientMetadata{
		Label:        "Omega-6",
		Unit:         "g",
		ClinicalPath: "nutrients.fat.omega6",
		Aliases:      []string{"omega6", "omega-6", "linoleic", "PUFA 18:2 n-6 c,c", "PUFA 20:4 n-6"},
		Category:     domain.CategoryMacro,
		Parent:       "fat",
	}},
	{Key: "cholesterol", Meta: domain.NutrientMetadata{
		Label:        "Cholesterol",
		Unit:         "mg",
		ClinicalPath: "nutrients.fat.cholesterol",
		Aliases:      []string{"cholesterol", "Cholesterol"},
		Category:     domain.CategoryMacro,
		Parent:       "fat",
	}},

	// Water
	{Key: "water", Meta: domain.NutrientMetadata{
		Label:        "Water",
		Unit:         "ml",
		ClinicalPath: "nutrients.water",
		Aliases:      []string{"water", "Water"},
		Category:     domain.CategoryMacro,
	}},

	// Vitamins
	{Key: "vitamin_a", Meta: domain.NutrientMetadata{
		Label:        "Vitamin A",
		Unit:         "mcg",
		ClinicalPath: "nutrients.vitaminA",
		Aliases:      []string{"vitamin-a", "Vitamin A, RAE", "Vitamin A"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "vitamin_c", Meta: domain.NutrientMetadata{
		Label:        "Vitamin C",
		Unit:         "mg",
		ClinicalPath: "nutrients.vitaminC",
		Aliases:      []string{"vitamin-c", "Vitamin C, total ascorbic acid", "Vitamin C", "VITAMIN C"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "vitamin_d", Meta: domain.NutrientMetadata{
		Label:        "Vitamin D",
		Unit:         "mcg",
		ClinicalPath: "nutrients.vitaminD",
		Aliases:      []string{"vitamin-d", "Vitamin D (D2 + D3)", "Vitamin D"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "vitamin_e", Meta: domain.NutrientMetadata{
		Label:        "Vitamin E",
		Unit:         "mg",
		ClinicalPath: "nutrients.vitaminE",
		Aliases:      []string{"vitamin-e", "Vitamin E (alpha-tocopherol)", "Vitamin E"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "vitamin_k", Meta: domain.NutrientMetadata{
		Label:        "Vitamin K",
		Unit:         "mcg",
		ClinicalPath: "nutrients.vitaminK",
		Aliases:      []string{"vitamin-k", "Vitamin K (phylloquinone)", "Vitamin K", "VITAMIN K"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "thiamin", Meta: domain.NutrientMetadata{
		Label:        "Thiamin (B1)",
		Unit:         "mg",
		ClinicalPath: "nutrients.thiamin",
		Aliases:      []string{"thiamin", "Thiamin"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "riboflavin", Meta: domain.NutrientMetadata{
		Label:        "Riboflavin (B2)",
		Unit:         "mg",
		ClinicalPath: "nutrients.riboflavin",
		Aliases:      []string{"riboflavin", "Riboflavin"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "niacin", Meta: domain.NutrientMetadata{
		Label:        "Niacin (B3)",
		Unit:         "mg",
		ClinicalPath: "nutrients.niacin",
		Aliases:      []string{"niacin", "Niacin"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "vitamin_b6", Meta: domain.NutrientMetadata{
		Label:        "Vitamin B6",
		Unit:         "mg",
		ClinicalPath: "nutrients.vitaminB6",
		Aliases:      []string{"vitamin-b6", "Vitamin B-6"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "folate", Meta: domain.NutrientMetadata{
		Label:        "Folate",
		Unit:         "mcg",
		ClinicalPath: "nutrients.folate",
		Aliases:      []string{"folate", "folic-acid", "Folate, total"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "vitamin_b12", Meta: domain.NutrientMetadata{
		Label:        "Vitamin B12",
		Unit:         "mcg",
		ClinicalPath: "nutrients.vitaminB12",
		Aliases:      []string{"vitamin-b12", "Vitamin B-12"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "choline", Meta: domain.NutrientMetadata{
		Label:        "Choline",
		Unit:         "g",
		ClinicalPath: "nutrients.choline",
		Aliases:      []string{"choline", "Choline, total"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "pantothenic_acid", Meta: domain.NutrientMetadata{
		Label:        "Pantothenic Acid",
		Unit:         "mg",
		ClinicalPath: "nutrients.pantothenicAcid",
		Aliases:      []string{"pantothenic-acid", "Pantothenic acid"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "biotin", Meta: domain.NutrientMetadata{
		Label:        "Biotin",
		Unit:         "mcg",
		ClinicalPath: "nutrients.biotin",
		Aliases:      []string{"biotin", "Biotin"},
		Category:     domain.CategoryVitamin,
	}},

	// Minerals
	{Key: "calcium", Meta: domain.NutrientMetadata{
		Label:        "Calcium",
		Unit:         "mg",
		ClinicalPath: "nutrients.calcium",
		Aliases:      []string{"calcium", "Calcium, Ca"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "chloride", Meta: domain.NutrientMetadata{
		Label:        "Chloride",
		Unit:         "g",
		ClinicalPath: "nutrients.chloride",
		Aliases:      []string{"chloride", "Chloride, Cl"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "chromium", Meta: domain.NutrientMetadata{
		Label:        "Chromium",
		Unit:         "mcg",
		ClinicalPath: "nutrients.chromium",
		Aliases:      []string{"chromium", "Chromium, Cr"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "copper", Meta: domain.NutrientMetadata{
		Label:        "Copper",
		Unit:         "mcg",
		ClinicalPath: "nutrients.copper",
		Aliases:      []string{"copper", "Copper, Cu"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "fluoride", Meta: domain.NutrientMetadata{
		Label:        "Fluoride",
		Unit:         "mg",
		ClinicalPath: "nutrients.fluoride",
		Aliases:      []string{"fluoride", "Fluoride, F"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "iodine", Meta: domain.NutrientMetadata{
		Label:        "Iodine",
		Unit:         "mcg",
		ClinicalPath: "nutrients.iodine",
		Aliases:      []string{"iodine", "Iodine, I"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "iron", Meta: domain.NutrientMetadata{
		Label:        "Iron",
		Unit:         "mg",
		ClinicalPath: "nutrients.iron",
		Aliases:      []string{"iron", "Iron, Fe"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "magnesium", Meta: domain.NutrientMetadata{
		Label:        "Magnesium",
		Unit:         "mg",
		ClinicalPath: "nutrients.magnesium",
		Aliases:      []string{"magnesium", "Magnesium, Mg"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "manganese", Meta: domain.NutrientMetadata{
		Label:        "Manganese",
		Unit:         "mg",
		ClinicalPath: "nutrients.manganese",
		Aliases:      []string{"manganese", "Manganese, Mn"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "molybdenum", Meta: domain.NutrientMetadata{
		Label:        "Molybdenum",
		Unit:         "mcg",
		ClinicalPath: "nutrients.molybdenum",
		Aliases:      []string{"molybdenum", "Molybdenum, Mo"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "phosphorus", Meta: domain.NutrientMetadata{
		Label:        "Phosphorus",
		Unit:         "mg",
		ClinicalPath: "nutrients.phosphorus",
		Aliases:      []string{"phosphorus", "Phosphorus, P"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "potassium", Meta: domain.NutrientMetadata{
		Label:        "Potassium",
		Unit:         "mg",
		ClinicalPath: "nutrients.potassium",
		Aliases:      []string{"potassium", "Potassium, K"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "selenium", Meta: domain.NutrientMetadata{
		Label:        "Selenium",
		Unit:         "mcg",
		ClinicalPath: "nutrients.selenium",
		Aliases:      []string{"selenium", "Selenium, Se"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "sodium", Meta: domain.NutrientMetadata{
		Label:        "Sodium",
		Unit:         "mg",
		ClinicalPath: "nutrients.sodium",
		Aliases:      []string{"sodium", "Sodium, Na"},
		Category:     domain.CategoryMineral,
	}},
	{Key: "zinc", Meta: domain.NutrientMetadata{
		Label:        "Zinc",
		Unit:         "mg",
		ClinicalPath: "nutrients.zinc",
		Aliases:      []string{"zinc", "Zinc, Zn"},
		Category:     domain.CategoryMineral,
	}},

	// Carotenoids and other compounds
	{Key: "beta_carotene", Meta: domain.NutrientMetadata{
		Label:        "Beta-carotene",
		Unit:         "mcg",
		ClinicalPath: "nutrients.vitaminA", // contributes to vitamin A
		Aliases:      []string{"beta-carotene", "Carotene, beta", "Beta-carotene"},
		Category:     domain.CategoryVitamin,
	}},
	{Key: "lycopene", Meta: domain.NutrientMetadata{
		Label:        "Lycopene",
		Unit:         "mcg",
		ClinicalPath: "nutrients.other.lycopene",
		Aliases:      []string{"lycopene", "Lycopene"},
		Category:     domain.CategoryOther,
	}},
	{Key: "lutein_zeaxanthin", Meta: domain.NutrientMetadata{
		Label:        "Lutein + Zeaxanthin",
		Unit:         "mcg",
		ClinicalPath: "nutrients.other.luteinZeaxanthin",
		Aliases:      []string{"lutein_zeaxanthin", "Lutein + zeaxanthin", "Lutein + Zeaxanthin"},
		Category:     domain.CategoryOther,
	}},
}
