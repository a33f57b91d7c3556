package usecase

const (
	categorySports    = "sports"
	categoryHousehold = "household"
	categoryTools     = "tools"
	categoryOther     = "other"
)

// catalog is scanned in declaration order and so are each archetype's
// variants. A variant that is a substring of another ("5kg" in "15kg",
// "5hp" in "2.5hp") must come after it. Archetype order is load-bearing as
// well: "battery charger" resolves to battery because battery is declared
// first, and propeller precedes rope because "propeller" contains "rope".
var catalog = []CatalogArchetype{
	{
		Keyword: "anchor",
		Variants: []CatalogVariant{
			variant("25kg", 25, 60, 40, 30, categoryMarine),
			variant("20kg", 20, 55, 38, 28, categoryMarine),
			variant("15kg", 15, 50, 35, 25, categoryMarine),
			variant("10kg", 10, 45, 30, 22, categoryMarine),
			variant("5kg", 5, 35, 25, 18, categoryMarine),
			variant("45lb", 20.4, 55, 38, 28, categoryMarine),
			variant("35lb", 15.9, 50, 35, 25, categoryMarine),
			variant("25lb", 11.3, 45, 30, 22, categoryMarine),
			variant("rocna", 15, 55, 40, 30, categoryMarine),
			variant("mantus", 15, 55, 40, 30, categoryMarine),
			variant("delta", 10, 50, 30, 25, categoryMarine),
			variant("cqr", 15, 60, 30, 30, categoryMarine),
			variant("bruce", 10, 45, 40, 25, categoryMarine),
			variant("danforth", 6, 60, 45, 10, categoryMarine),
			variant("fortress", 5, 60, 50, 8, categoryMarine),
			variant("grapnel", 3, 35, 20, 20, categoryMarine),
			variant("mushroom", 10, 30, 30, 25, categoryMarine),
		},
		Default: physical(12, 50, 35, 25, categoryMarine),
	},
	{
		Keyword: "battery",
		Variants: []CatalogVariant{
			variant("lithium", 12, 35, 20, 22, categoryElectronics),
			variant("lifepo4", 12, 35, 20, 22, categoryElectronics),
			variant("8d", 72, 53, 28, 25, categoryMarine),
			variant("4d", 59, 53, 22, 25, categoryMarine),
			variant("group 31", 27, 33, 17, 24, categoryMarine),
			variant("group 27", 24, 31, 17, 23, categoryMarine),
			variant("group 24", 22, 27, 17, 23, categoryMarine),
			variant("agm", 28, 33, 17, 24, categoryMarine),
			variant("gel", 28, 33, 17, 24, categoryMarine),
			variant("deep cycle", 27, 33, 17, 24, categoryMarine),
			variant("starting", 18, 26, 17, 22, categoryMarine),
		},
		Default: physical(25, 33, 17, 24, categoryMarine),
	},
	{
		Keyword: "outboard",
		Variants: []CatalogVariant{
			variant("300hp", 260, 95, 65, 200, categoryMarine),
			variant("250hp", 230, 90, 60, 195, categoryMarine),
			variant("200hp", 215, 85, 60, 190, categoryMarine),
			variant("150hp", 205, 80, 55, 180, categoryMarine),
			variant("115hp", 170, 75, 55, 170, categoryMarine),
			variant("90hp", 160, 70, 50, 165, categoryMarine),
			variant("75hp", 150, 70, 50, 160, categoryMarine),
			variant("60hp", 115, 65, 45, 150, categoryMarine),
			variant("50hp", 105, 60, 45, 145, categoryMarine),
			variant("40hp", 95, 60, 40, 140, categoryMarine),
			variant("30hp", 75, 55, 40, 135, categoryMarine),
			variant("25hp", 70, 55, 40, 130, categoryMarine),
			variant("20hp", 50, 50, 35, 125, categoryMarine),
			variant("15hp", 45, 50, 35, 120, categoryMarine),
			variant("9.9hp", 40, 45, 35, 115, categoryMarine),
			variant("8hp", 37, 45, 35, 110, categoryMarine),
			variant("6hp", 27, 40, 30, 105, categoryMarine),
			variant("2.5hp", 13, 35, 25, 95, categoryMarine),
			variant("5hp", 25, 40, 30, 100, categoryMarine),
			variant("4hp", 24, 40, 30, 100, categoryMarine),
			variant("2hp", 12, 35, 25, 90, categoryMarine),
			variant("electric", 15, 40, 30, 100, categoryMarine),
		},
		Default: physical(45, 50, 35, 120, categoryMarine),
	},
	{
		Keyword: "engine",
		Variants: []CatalogVariant{
			variant("diesel", 180, 90, 60, 65, categoryMarine),
			variant("inboard", 200, 90, 60, 65, categoryMarine),
		},
		Default: physical(150, 85, 60, 65, categoryMarine),
	},
	{
		Keyword: "generator",
		Variants: []CatalogVariant{
			variant("eu1000", 13, 45, 24, 38, categoryElectronics),
			variant("eu2200", 21, 51, 29, 44, categoryElectronics),
			variant("eu3000", 35, 59, 45, 48, categoryElectronics),
			variant("diesel", 120, 80, 55, 60, categoryElectronics),
			variant("portable", 25, 55, 35, 45, categoryElectronics),
		},
		Default: physical(30, 55, 40, 45, categoryElectronics),
	},
	{
		Keyword: "mast",
		Variants: []CatalogVariant{
			variant("dinghy", 6, 500, 8, 8, categoryMarine),
			variant("carbon", 60, 1200, 25, 18, categoryMarine),
			variant("aluminum", 90, 1200, 25, 18, categoryMarine),
			variant("wood", 110, 1200, 25, 20, categoryMarine),
		},
		Default: physical(80, 1200, 25, 18, categoryMarine),
	},
	{
		Keyword: "boom",
		Variants: []CatalogVariant{
			variant("carbon", 12, 400, 15, 12, categoryMarine),
		},
		Default: physical(20, 400, 18, 12, categoryMarine),
	},
	{
		Keyword: "sail",
		Variants: []CatalogVariant{
			variant("spinnaker", 8, 80, 40, 40, categoryMarine),
			variant("gennaker", 8, 80, 40, 40, categoryMarine),
			variant("genoa", 15, 120, 40, 35, categoryMarine),
			variant("jib", 8, 90, 35, 30, categoryMarine),
			variant("mainsail", 15, 120, 40, 35, categoryMarine),
			variant("storm", 5, 60, 30, 25, categoryMarine),
			variant("dinghy", 3, 60, 25, 20, categoryMarine),
		},
		Default: physical(12, 100, 40, 30, categoryMarine),
	},
	{
		Keyword: "winch",
		Variants: []CatalogVariant{
			variant("electric", 20, 35, 35, 35, categoryMarine),
			variant("self-tailing", 9, 25, 25, 28, categoryMarine),
			variant("self tailing", 9, 25, 25, 28, categoryMarine),
		},
		Default: physical(8, 25, 25, 25, categoryMarine),
	},
	{
		Keyword: "windlass",
		Variants: []CatalogVariant{
			variant("vertical", 15, 40, 25, 30, categoryMarine),
			variant("horizontal", 18, 45, 25, 25, categoryMarine),
		},
		Default: physical(17, 40, 25, 30, categoryMarine),
	},
	{
		Keyword: "propeller",
		Variants: []CatalogVariant{
			variant("folding", 3, 35, 20, 15, categoryMarine),
			variant("3-blade", 6, 40, 40, 15, categoryMarine),
			variant("3 blade", 6, 40, 40, 15, categoryMarine),
			variant("bronze", 5, 35, 35, 12, categoryMarine),
			variant("stainless", 6, 38, 38, 13, categoryMarine),
			variant("aluminum", 3, 35, 35, 12, categoryMarine),
		},
		Default: physical(4, 35, 35, 12, categoryMarine),
	},
	{
		Keyword: "rope",
		Variants: []CatalogVariant{
			variant("dyneema", 2, 40, 40, 15, categoryMarine),
			variant("nylon", 5, 45, 45, 20, categoryMarine),
			variant("polyester", 5, 45, 45, 20, categoryMarine),
			variant("dock line", 2, 35, 35, 10, categoryMarine),
			variant("sheet", 3, 40, 40, 15, categoryMarine),
			variant("halyard", 3, 40, 40, 15, categoryMarine),
		},
		Default: physical(4, 40, 40, 15, categoryMarine),
	},
	{
		Keyword: "chain",
		Variants: []CatalogVariant{
			variant("10mm", 25, 40, 30, 25, categoryMarine),
			variant("8mm", 16, 35, 30, 20, categoryMarine),
			variant("6mm", 10, 30, 25, 18, categoryMarine),
		},
		Default: physical(20, 35, 30, 20, categoryMarine),
	},
	{
		Keyword: "dinghy",
		Variants: []CatalogVariant{
			variant("inflatable", 35, 120, 60, 40, categoryMarine),
			variant("rib", 55, 300, 155, 50, categoryMarine),
			variant("rigid", 50, 280, 140, 45, categoryMarine),
		},
		Default: physical(40, 260, 140, 45, categoryMarine),
	},
	{
		Keyword: "kayak",
		Variants: []CatalogVariant{
			variant("inflatable", 15, 80, 50, 30, categorySports),
			variant("tandem", 30, 400, 80, 35, categorySports),
			variant("sit-on-top", 25, 320, 75, 35, categorySports),
		},
		Default: physical(22, 320, 65, 35, categorySports),
	},
	{
		Keyword: "paddleboard",
		Variants: []CatalogVariant{
			variant("inflatable", 11, 90, 40, 30, categorySports),
		},
		Default: physical(12, 320, 80, 15, categorySports),
	},
	{
		Keyword: "life jacket",
		Variants: []CatalogVariant{
			variant("inflatable", 1, 40, 25, 10, categoryMarine),
			variant("child", 0.6, 40, 30, 8, categoryMarine),
		},
		Default: physical(1, 50, 35, 10, categoryMarine),
	},
	{
		Keyword: "charger",
		Variants: []CatalogVariant{
			variant("shore power", 5, 30, 20, 12, categoryElectronics),
			variant("solar", 0.5, 20, 15, 6, categoryElectronics),
		},
		Default: physical(4, 30, 20, 12, categoryElectronics),
	},
	{
		Keyword: "autopilot",
		Variants: []CatalogVariant{
			variant("tiller", 4, 70, 15, 10, categoryElectronics),
			variant("wheel", 6, 45, 45, 20, categoryElectronics),
		},
		Default: physical(5, 60, 30, 20, categoryElectronics),
	},
	{
		Keyword: "chartplotter",
		Default: physical(2.5, 30, 22, 12, categoryElectronics),
	},
	{
		Keyword: "vhf",
		Variants: []CatalogVariant{
			variant("handheld", 0.4, 20, 10, 8, categoryElectronics),
			variant("fixed", 1.5, 25, 20, 15, categoryElectronics),
		},
		Default: physical(1.2, 25, 20, 15, categoryElectronics),
	},
	{
		Keyword: "solar",
		Variants: []CatalogVariant{
			variant("flexible", 2, 120, 55, 2, categoryElectronics),
			variant("portable", 8, 60, 55, 6, categoryElectronics),
		},
		Default: physical(12, 120, 55, 4, categoryElectronics),
	},
	{
		Keyword: "inverter",
		Variants: []CatalogVariant{
			variant("pure sine", 8, 40, 25, 12, categoryElectronics),
		},
		Default: physical(6, 35, 25, 12, categoryElectronics),
	},
	{
		Keyword: "fender",
		Variants: []CatalogVariant{
			variant("ball", 4, 60, 60, 60, categoryMarine),
			variant("flat", 1.5, 60, 30, 10, categoryMarine),
		},
		Default: physical(2, 70, 25, 25, categoryMarine),
	},
	{
		Keyword: "radar",
		Variants: []CatalogVariant{
			variant("open array", 25, 140, 40, 40, categoryElectronics),
			variant("dome", 7, 55, 55, 25, categoryElectronics),
		},
		Default: physical(8, 60, 60, 25, categoryElectronics),
	},
	{
		Keyword: "refrigerator",
		Variants: []CatalogVariant{
			variant("portable", 18, 65, 40, 45, categoryHousehold),
			variant("drawer", 25, 60, 55, 40, categoryHousehold),
		},
		Default: physical(40, 60, 55, 85, categoryHousehold),
	},
	{
		Keyword: "fridge",
		Variants: []CatalogVariant{
			variant("mini", 15, 48, 45, 50, categoryHousehold),
			variant("portable", 18, 65, 40, 45, categoryHousehold),
			variant("drawer", 25, 60, 55, 40, categoryHousehold),
		},
		Default: physical(40, 60, 55, 85, categoryHousehold),
	},
	{
		Keyword: "freezer",
		Variants: []CatalogVariant{
			variant("chest", 35, 90, 60, 85, categoryHousehold),
			variant("portable", 18, 65, 40, 45, categoryHousehold),
		},
		Default: physical(40, 60, 60, 85, categoryHousehold),
	},
	{
		Keyword: "cooler",
		Variants: []CatalogVariant{
			variant("yeti", 10, 70, 45, 45, categoryHousehold),
			variant("small", 3, 40, 30, 30, categoryHousehold),
			variant("large", 12, 80, 45, 45, categoryHousehold),
		},
		Default: physical(6, 60, 40, 40, categoryHousehold),
	},
	{
		Keyword: "life raft",
		Variants: []CatalogVariant{
			variant("offshore", 45, 80, 55, 35, categoryMarine),
			variant("coastal", 30, 70, 50, 30, categoryMarine),
			variant("valise", 25, 70, 45, 30, categoryMarine),
			variant("canister", 40, 80, 55, 55, categoryMarine),
		},
		Default: physical(35, 75, 50, 35, categoryMarine),
	},
	{
		Keyword: "extinguisher",
		Variants: []CatalogVariant{
			variant("co2", 6, 20, 15, 60, categoryMarine),
		},
		Default: physical(3, 18, 15, 45, categoryMarine),
	},
	{
		Keyword: "pump",
		Variants: []CatalogVariant{
			variant("bilge", 1.5, 20, 12, 12, categoryMarine),
			variant("water pressure", 2.5, 25, 15, 15, categoryMarine),
			variant("fuel", 1.5, 20, 12, 12, categoryMarine),
			variant("hand", 1, 40, 10, 10, categoryMarine),
		},
		Default: physical(2, 25, 15, 15, categoryMarine),
	},
	{
		Keyword: "tank",
		Variants: []CatalogVariant{
			variant("bladder", 3, 40, 30, 10, categoryMarine),
			variant("holding", 10, 70, 40, 35, categoryMarine),
			variant("water", 10, 80, 40, 30, categoryMarine),
			variant("fuel", 12, 80, 40, 30, categoryMarine),
		},
		Default: physical(10, 80, 40, 30, categoryMarine),
	},
	{
		Keyword: "watermaker",
		Default: physical(35, 60, 40, 40, categoryMarine),
	},
	{
		Keyword: "toilet",
		Variants: []CatalogVariant{
			variant("electric", 15, 50, 40, 40, categoryMarine),
			variant("composting", 12, 50, 45, 50, categoryMarine),
			variant("manual", 10, 45, 38, 35, categoryMarine),
		},
		Default: physical(12, 48, 40, 38, categoryMarine),
	},
	{
		Keyword: "bimini",
		Default: physical(8, 180, 20, 15, categoryMarine),
	},
	{
		Keyword: "cushion",
		Variants: []CatalogVariant{
			variant("cockpit", 3, 100, 50, 10, categoryHousehold),
		},
		Default: physical(2, 60, 40, 10, categoryHousehold),
	},
	{
		Keyword: "grill",
		Variants: []CatalogVariant{
			variant("magma", 7, 50, 35, 25, categoryHousehold),
		},
		Default: physical(9, 55, 40, 30, categoryHousehold),
	},
	{
		Keyword: "toolbox",
		Default: physical(10, 50, 25, 25, categoryTools),
	},
	{
		Keyword: "bicycle",
		Variants: []CatalogVariant{
			variant("electric", 25, 180, 60, 110, categorySports),
			variant("folding", 12, 80, 35, 65, categorySports),
		},
		Default: physical(14, 175, 60, 105, categorySports),
	},
	{
		Keyword: "bike",
		Variants: []CatalogVariant{
			variant("e-bike", 25, 180, 60, 110, categorySports),
			variant("folding", 12, 80, 35, 65, categorySports),
			variant("kids", 8, 120, 50, 75, categorySports),
		},
		Default: physical(14, 175, 60, 105, categorySports),
	},
	{
		Keyword: "suitcase",
		Variants: []CatalogVariant{
			variant("carry-on", 3.5, 55, 40, 23, categoryOther),
			variant("carry on", 3.5, 55, 40, 23, categoryOther),
			variant("large", 5.5, 75, 50, 30, categoryOther),
		},
		Default: physical(4.5, 65, 45, 27, categoryOther),
	},
	{
		Keyword: "guitar",
		Variants: []CatalogVariant{
			variant("acoustic", 2.5, 105, 42, 12, categoryOther),
			variant("electric", 3.6, 100, 35, 6, categoryOther),
			variant("bass", 4.5, 115, 35, 6, categoryOther),
		},
		Default: physical(3, 105, 40, 12, categoryOther),
	},
	{
		Keyword: "laptop",
		Variants: []CatalogVariant{
			variant("gaming", 3, 42, 30, 6, categoryElectronics),
		},
		Default: physical(2, 40, 30, 5, categoryElectronics),
	},
	{
		Keyword: "television",
		Variants: []CatalogVariant{
			variant("65 inch", 23, 150, 90, 15, categoryElectronics),
			variant("55 inch", 17, 130, 80, 15, categoryElectronics),
			variant("43 inch", 10, 100, 65, 12, categoryElectronics),
			variant("32 inch", 6, 80, 50, 10, categoryElectronics),
		},
		Default: physical(12, 110, 70, 12, categoryElectronics),
	},
	{
		Keyword: "phone",
		Default: physical(0.4, 20, 12, 6, categoryElectronics),
	},
}
