package static

import "github.com/climate-solutions/solutions-backend/internal/catalog"

// Seed data compiled into the binary. SeedSectors and SeedProjects are also
// what cmd/seed loads into Postgres, so the two providers start from the
// same catalog.

var SeedSectors = []catalog.Sector{
	{ID: 1, SectorName: "Industry"},
	{ID: 2, SectorName: "Transportation"},
	{ID: 3, SectorName: "Electricity"},
	{ID: 4, SectorName: "Land Sinks"},
	{ID: 5, SectorName: "Food, Agriculture, and Land Use"},
}

var SeedProjects = []catalog.Project{
	{
		ID:                1,
		Title:             "Alternative Cement",
		FeatureImgURL:     "https://images.unsplash.com/photo-1517089596392-fb9a9033e05b?w=1200",
		SummaryShort:      "Lower-carbon binders reduce the clinker share of cement, cutting process emissions at the kiln.",
		IntroShort:        "Cement production is one of the largest single sources of industrial CO2.",
		Impact:            "Reducing the clinker-to-cement ratio could avoid up to 16 gigatons of emissions by 2050.",
		OriginalSourceURL: "https://drawdown.org/solutions/alternative-cement",
		SectorID:          1,
	},
	{
		ID:                2,
		Title:             "Bicycle Infrastructure",
		FeatureImgURL:     "https://images.unsplash.com/photo-1534787238916-9ba6764efd4f?w=1200",
		SummaryShort:      "Protected lanes and secure parking shift short urban trips from cars to bicycles.",
		IntroShort:        "Cities that invest in cycling networks see mode share climb within a few years.",
		Impact:            "Every car trip replaced by a bicycle avoids roughly 150g of CO2 per kilometre.",
		OriginalSourceURL: "https://drawdown.org/solutions/bicycle-infrastructure",
		SectorID:          2,
	},
	{
		ID:                3,
		Title:             "Distributed Solar Photovoltaics",
		FeatureImgURL:     "https://images.unsplash.com/photo-1509391366360-2e959784a276?w=1200",
		SummaryShort:      "Rooftop panels generate electricity where it is used, trimming grid losses.",
		IntroShort:        "Small-scale solar is the fastest-growing source of new generation capacity.",
		Impact:            "Displacing fossil generation with rooftop solar avoids emissions and grid build-out alike.",
		OriginalSourceURL: "https://drawdown.org/solutions/distributed-solar-photovoltaics",
		SectorID:          3,
	},
	{
		ID:                4,
		Title:             "Tropical Forest Restoration",
		FeatureImgURL:     "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1200",
		SummaryShort:      "Regrowing degraded tropical forest pulls carbon back out of the atmosphere.",
		IntroShort:        "Hundreds of millions of hectares of cleared tropical forest are candidates for restoration.",
		Impact:            "Restored tropical forests are among the cheapest large-scale carbon sinks available.",
		OriginalSourceURL: "https://drawdown.org/solutions/tropical-forest-restoration",
		SectorID:          4,
	},
	{
		ID:                5,
		Title:             "Reduced Food Waste",
		FeatureImgURL:     "https://images.unsplash.com/photo-1488459716781-31db52582fe9?w=1200",
		SummaryShort:      "Roughly a third of food produced is never eaten; avoiding that waste avoids its footprint.",
		IntroShort:        "Food waste happens at every step from farm to fridge.",
		Impact:            "Cutting food waste in half ranks among the top climate solutions by avoided emissions.",
		OriginalSourceURL: "https://drawdown.org/solutions/reduced-food-waste",
		SectorID:          5,
	},
	{
		ID:                6,
		Title:             "Electric Trains",
		FeatureImgURL:     "https://images.unsplash.com/photo-1474487548417-781cb71495f3?w=1200",
		SummaryShort:      "Electrifying rail freight and passenger lines replaces diesel traction with grid power.",
		IntroShort:        "Rail is already the most efficient way to move heavy freight over land.",
		Impact:            "An electrified railway emits a fraction of the CO2 per tonne-kilometre of diesel haulage.",
		OriginalSourceURL: "https://drawdown.org/solutions/electric-trains",
		SectorID:          2,
	},
	{
		ID:                7,
		Title:             "Onshore Wind Turbines",
		FeatureImgURL:     "https://images.unsplash.com/photo-1466611653911-95081537e5b7?w=1200",
		SummaryShort:      "Utility-scale onshore wind is one of the cheapest sources of new electricity.",
		IntroShort:        "Wind now undercuts fossil generation on cost in most markets.",
		Impact:            "Each gigawatt of wind displaces roughly two million tonnes of CO2 per year.",
		OriginalSourceURL: "https://drawdown.org/solutions/onshore-wind-turbines",
		SectorID:          3,
	},
	{
		ID:                8,
		Title:             "Recycled Metals",
		FeatureImgURL:     "https://images.unsplash.com/photo-1567093322503-341bb11d7cd6?w=1200",
		SummaryShort:      "Remelting scrap steel and aluminium uses a fraction of the energy of primary smelting.",
		IntroShort:        "Secondary metal production closes the loop on two of the most energy-intensive materials.",
		Impact:            "Recycled aluminium needs about 5% of the energy of smelting new metal from ore.",
		OriginalSourceURL: "https://drawdown.org/solutions/recycled-metals",
		SectorID:          1,
	},
}
