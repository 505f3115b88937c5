package palette

// defaultEntries is the embedded reference dataset: common iris shade
// names with their hex values, in a fixed order that also serves as the
// distance tie-break.
var defaultEntries = []Entry{
	// Browns
	{Name: "Dark_Brown", Hex: "3b2416"},
	{Name: "Chocolate_Brown", Hex: "4e2e1e"},
	{Name: "Coffee", Hex: "5a3c2a"},
	{Name: "Walnut", Hex: "6b4a2f"},
	{Name: "Chestnut", Hex: "71452a"},
	{Name: "Mocha", Hex: "7a5234"},
	{Name: "Cocoa", Hex: "86604a"},
	{Name: "Caramel", Hex: "a5713b"},
	{Name: "Mahogany", Hex: "77402a"},
	{Name: "Umber", Hex: "61473b"},
	{Name: "Sepia", Hex: "704f33"},
	{Name: "Bronze", Hex: "8c6a3f"},
	{Name: "Copper_Brown", Hex: "9b5d3c"},
	{Name: "Light_Brown", Hex: "a3703f"},
	{Name: "Tan", Hex: "b08d57"},

	// Ambers
	{Name: "Amber", Hex: "b5792b"},
	{Name: "Honey", Hex: "c08f3e"},
	{Name: "Golden_Amber", Hex: "c79b4b"},
	{Name: "Cognac", Hex: "9a5b23"},
	{Name: "Whiskey", Hex: "8f5a2d"},

	// Hazels
	{Name: "Hazel", Hex: "8e7645"},
	{Name: "Hazel_Green", Hex: "7e7a47"},
	{Name: "Hazel_Brown", Hex: "8a6a3f"},
	{Name: "Golden_Hazel", Hex: "a08a52"},

	// Greens
	{Name: "Emerald", Hex: "2e7d4f"},
	{Name: "Forest_Green", Hex: "3a5f3a"},
	{Name: "Jade", Hex: "48876a"},
	{Name: "Moss_Green", Hex: "6a7c44"},
	{Name: "Sage_Green", Hex: "8a9a6b"},
	{Name: "Olive", Hex: "737c3f"},
	{Name: "Olive_Drab", Hex: "6b6b3a"},
	{Name: "Fern", Hex: "5d8a4a"},
	{Name: "Pistachio", Hex: "93b778"},
	{Name: "Mint_Green", Hex: "98c9a3"},
	{Name: "Sea_Green", Hex: "4c8d77"},
	{Name: "Pale_Green", Hex: "a8bf93"},

	// Teals
	{Name: "Teal", Hex: "337f7b"},
	{Name: "Aquamarine", Hex: "66b2a8"},
	{Name: "Turquoise", Hex: "45a8a0"},

	// Blues
	{Name: "Deep_Blue", Hex: "27476e"},
	{Name: "Navy", Hex: "2d3f63"},
	{Name: "Ocean_Blue", Hex: "3a6ea5"},
	{Name: "Denim", Hex: "3f5e8c"},
	{Name: "Steel_Blue", Hex: "4a7399"},
	{Name: "Cornflower", Hex: "6a8fc9"},
	{Name: "Sky_Blue", Hex: "7aa5cf"},
	{Name: "Azure", Hex: "5a8fbf"},
	{Name: "Ice_Blue", Hex: "a3c1d9"},
	{Name: "Powder_Blue", Hex: "a9c4d4"},
	{Name: "Slate_Blue", Hex: "5f7491"},
	{Name: "Gray_Blue", Hex: "7b8a9c"},

	// Violets
	{Name: "Violet", Hex: "7a5ba6"},
	{Name: "Lavender", Hex: "9a8bbf"},
	{Name: "Amethyst", Hex: "8763a8"},
	{Name: "Plum", Hex: "6e4a6e"},

	// Grays
	{Name: "Charcoal", Hex: "3c4043"},
	{Name: "Slate_Gray", Hex: "6a7077"},
	{Name: "Storm_Gray", Hex: "7d8186"},
	{Name: "Pewter", Hex: "8e9297"},
	{Name: "Ash_Gray", Hex: "9fa4a9"},
	{Name: "Silver", Hex: "b8bcc0"},
	{Name: "Smoke", Hex: "a7a9ac"},

	// Neutrals and edge tones
	{Name: "Almond", Hex: "c9a87c"},
	{Name: "Sand", Hex: "c2b280"},
	{Name: "Taupe", Hex: "8b8075"},
	{Name: "Khaki", Hex: "a59b6a"},
	{Name: "Ivory", Hex: "e8e4d8"},
	{Name: "Porcelain", Hex: "dcd7cf"},
	{Name: "Onyx", Hex: "2b2b2e"},
	{Name: "Ebony", Hex: "24201d"},
	{Name: "Raven", Hex: "1d1f24"},
	{Name: "Burgundy", Hex: "5e2b35"},
	{Name: "Rust", Hex: "92442a"},
	{Name: "Rosewood", Hex: "65303a"},
}
