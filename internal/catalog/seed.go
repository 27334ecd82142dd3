package catalog

import "github.com/strainwise/strainwise/internal/domain"

// seedStrains returns the built-in strain dataset. Sourced from seedfinder.eu
// listings; ratings and review counts reflect aggregate community reviews.
func seedStrains() []domain.Strain {
	return []domain.Strain{
		{
			ID: "gdp1", Name: "Granddaddy Purple", Breeder: "Purple Farm Genetics",
			Type: domain.TypeIndica, THCContent: "17-24%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Caryophyllene"},
			Effects:  []string{"Relaxing", "Sleepy", "Pain Relief"},
			Flavors:  []string{"Grape", "Berry", "Sweet"},
			Rating:   4.8, ReviewCount: 354,
			Description: "Granddaddy Purple (GDP) is a famous indica strain that combines the best of Purple Urkle and Big Bud. This California staple inherits a complex grape and berry aroma from its Purple Urkle parent.",
			ImageURL:    "https://plus.unsplash.com/premium_photo-1667543228378-c8920444f272?w=800&auto=format&fit=crop",
		},
		{
			ID: "nl1", Name: "Northern Lights", Breeder: "Sensi Seeds",
			Type: domain.TypeIndica, THCContent: "16-21%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Pinene"},
			Effects:  []string{"Relaxing", "Happy", "Sleepy"},
			Flavors:  []string{"Pine", "Earthy", "Sweet"},
			Rating:   4.9, ReviewCount: 612,
			Description: "Northern Lights is one of the most famous indica strains of all time, a pure indica that has won countless awards. The effects are classic indica - relaxing, sleepy, and excellent for stress relief.",
			ImageURL:    "https://images.unsplash.com/photo-1603909223429-69bb7101f420?w=800&auto=format&fit=crop",
		},
		{
			ID: "gg4", Name: "Gorilla Glue #4", Breeder: "GG Strains",
			Type: domain.TypeHybrid, THCContent: "25-30%", CBDContent: "0.1%",
			Terpenes: []string{"Caryophyllene", "Limonene", "Myrcene"},
			Effects:  []string{"Relaxing", "Euphoric", "Creative", "Happy"},
			Flavors:  []string{"Earthy", "Pine", "Chemical"},
			Rating:   4.7, ReviewCount: 528,
			Description: "Gorilla Glue #4 is a potent hybrid strain that delivers heavy-handed euphoria and relaxation, leaving you feeling 'glued' to the couch.",
			ImageURL:    "https://images.unsplash.com/photo-1616246686486-a4da96738bf8?w=800&auto=format&fit=crop",
		},
		{
			ID: "wd1", Name: "White Widow", Breeder: "Green House Seeds",
			Type: domain.TypeHybrid, THCContent: "18-25%", CBDContent: "0.2%",
			Terpenes: []string{"Caryophyllene", "Myrcene", "Limonene"},
			Effects:  []string{"Euphoric", "Uplifting", "Creative", "Energetic", "Focused"},
			Flavors:  []string{"Earthy", "Woody", "Sweet"},
			Rating:   4.5, ReviewCount: 489,
			Description: "White Widow is a balanced hybrid first bred in the Netherlands, a cross between a Brazilian sativa landrace and a resin-heavy South Indian indica.",
			ImageURL:    "https://images.unsplash.com/photo-1603572689298-2c721b826e69?w=800&auto=format&fit=crop",
		},
		{
			ID: "sk1", Name: "Sour Kush", Breeder: "DNA Genetics",
			Type: domain.TypeHybrid, THCContent: "20-25%", CBDContent: "0.3%",
			Terpenes: []string{"Myrcene", "Limonene", "Pinene"},
			Effects:  []string{"Relaxing", "Happy", "Euphoric", "Uplifting", "Pain Relief"},
			Flavors:  []string{"Sour", "Citrus", "Diesel"},
			Rating:   4.6, ReviewCount: 402,
			Description: "Sour Kush, also known as Sour OG, is a cross between OG Kush and Sour Diesel, offering a balance of relaxation and mental stimulation.",
			ImageURL:    "https://images.unsplash.com/photo-1603909223575-bd6bbca6e07b?w=800&auto=format&fit=crop",
		},
		{
			ID: "pk1", Name: "Purple Kush", Breeder: "BC Bud Depot",
			Type: domain.TypeIndica, THCContent: "17-22%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Caryophyllene", "Pinene"},
			Effects:  []string{"Relaxing", "Sleepy", "Happy", "Euphoric", "Pain Relief"},
			Flavors:  []string{"Grape", "Earthy", "Sweet"},
			Rating:   4.5, ReviewCount: 382,
			Description: "Purple Kush is a pure indica strain from the Oakland area of California, a cross between Hindu Kush and Purple Afghani. Blissful, long-lasting euphoria blankets the mind while physical relaxation rests the body.",
			ImageURL:    "https://images.unsplash.com/photo-1616246363838-7f610a33765c?w=800&auto=format&fit=crop",
		},
		{
			ID: "jh1", Name: "Jack Herer", Breeder: "Sensi Seeds",
			Type: domain.TypeSativaDominant, THCContent: "15-24%", CBDContent: "0.2%",
			Terpenes: []string{"Terpinolene", "Pinene", "Caryophyllene"},
			Effects:  []string{"Happy", "Uplifting", "Creative", "Energetic", "Focused"},
			Flavors:  []string{"Earthy", "Pine", "Woody"},
			Rating:   4.6, ReviewCount: 507,
			Description: "Jack Herer is a sativa-dominant strain named after the legendary cannabis activist. Its clear-headed, blissful high is ideal for creative pursuits.",
			ImageURL:    "https://images.unsplash.com/photo-1620218944466-5962fe189f01?w=800&auto=format&fit=crop",
		},
		{
			ID: "ak47", Name: "AK-47", Breeder: "Serious Seeds",
			Type: domain.TypeHybrid, THCContent: "15-20%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Pinene", "Limonene"},
			Effects:  []string{"Happy", "Relaxing", "Uplifting", "Sociable", "Creative"},
			Flavors:  []string{"Earthy", "Woody", "Sour"},
			Rating:   4.4, ReviewCount: 392,
			Description: "AK-47 is a sativa-dominant hybrid created by Serious Seeds in 1992. It produces a steady, long-lasting cerebral buzz that keeps you mentally alert.",
			ImageURL:    "https://images.unsplash.com/photo-1603962295671-494e8c4ba23b?w=800&auto=format&fit=crop",
		},
		{
			ID: "gs1", Name: "Girl Scout Cookies", Breeder: "Cookie Family",
			Type: domain.TypeHybrid, THCContent: "25-28%", CBDContent: "0.2%",
			Terpenes: []string{"Caryophyllene", "Limonene", "Humulene"},
			Effects:  []string{"Euphoric", "Happy", "Relaxing", "Creative", "Uplifting"},
			Flavors:  []string{"Sweet", "Earthy", "Dessert"},
			Rating:   4.7, ReviewCount: 624,
			Description: "Girl Scout Cookies, or GSC, is created by crossing OG Kush with Durban Poison. It produces a euphoric high with powerful full-body relaxation, ideal for evening use.",
			ImageURL:    "https://images.unsplash.com/photo-1620218982513-9040e40987a2?w=800&auto=format&fit=crop",
		},
		{
			ID: "bb1", Name: "Bruce Banner", Breeder: "Dark Horse Genetics",
			Type: domain.TypeHybrid, THCContent: "25-30%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Caryophyllene", "Limonene"},
			Effects:  []string{"Euphoric", "Happy", "Creative", "Energetic", "Focused"},
			Flavors:  []string{"Sweet", "Earthy", "Diesel"},
			Rating:   4.6, ReviewCount: 473,
			Description: "Bruce Banner is a heavy-hitting hybrid with strong OG Kush influence, delivering an immediate rush of euphoria and creativity followed by a relaxing body buzz. Recommended for experienced consumers.",
			ImageURL:    "https://images.unsplash.com/photo-1620472416242-92fab49decb8?w=800&auto=format&fit=crop",
		},
		{
			ID: "sd1", Name: "Sour Diesel", Breeder: "Unknown",
			Type: domain.TypeSativaDominant, THCContent: "20-25%", CBDContent: "0.1-0.2%",
			Terpenes: []string{"Myrcene", "Limonene", "Caryophyllene"},
			Effects:  []string{"Energetic", "Euphoric", "Happy", "Uplifting", "Creative"},
			Flavors:  []string{"Diesel", "Citrus", "Sour"},
			Rating:   4.5, ReviewCount: 567,
			Description: "Sour Diesel is a fast-acting strain renowned for its energizing effects, with a pungent diesel-like aroma and hints of citrus.",
			ImageURL:    "https://images.unsplash.com/photo-1603962313439-8857a866578a?w=800&auto=format&fit=crop",
		},
		{
			ID: "pr1", Name: "Pineapple Express", Breeder: "G13 Labs",
			Type: domain.TypeHybrid, THCContent: "18-25%", CBDContent: "0.1%",
			Terpenes: []string{"Caryophyllene", "Myrcene", "Limonene"},
			Effects:  []string{"Happy", "Uplifting", "Energetic", "Creative", "Relaxing"},
			Flavors:  []string{"Pineapple", "Tropical", "Cedar"},
			Rating:   4.5, ReviewCount: 489,
			Description: "Pineapple Express is a sativa-dominant hybrid, a cross between Trainwreck and Hawaiian. This tropical strain delivers energetic, uplifting effects paired with fresh pineapple notes.",
			ImageURL:    "https://images.unsplash.com/photo-1620472444248-cf02962b5ecf?w=800&auto=format&fit=crop",
		},
		{
			ID: "bw1", Name: "Blue Widow", Breeder: "Dinafem Seeds",
			Type: domain.TypeHybrid, THCContent: "15-20%", CBDContent: "0.1-0.2%",
			Terpenes: []string{"Myrcene", "Pinene", "Caryophyllene"},
			Effects:  []string{"Relaxing", "Happy", "Euphoric", "Creative", "Uplifting"},
			Flavors:  []string{"Berry", "Sweet", "Citrus"},
			Rating:   4.3, ReviewCount: 352,
			Description: "Blue Widow is a balanced hybrid cross between Blueberry and White Widow, beginning with a cerebral rush followed by full-body relaxation.",
			ImageURL:    "https://images.unsplash.com/photo-1603909223393-89aa239b7e8c?w=800&auto=format&fit=crop",
		},
		{
			ID: "am1", Name: "Amnesia Haze", Breeder: "Soma Seeds",
			Type: domain.TypeSativaDominant, THCContent: "20-25%", CBDContent: "0.5%",
			Terpenes: []string{"Myrcene", "Pinene", "Limonene"},
			Effects:  []string{"Energetic", "Euphoric", "Creative", "Focused", "Uplifting"},
			Flavors:  []string{"Citrus", "Lemon", "Earthy"},
			Rating:   4.6, ReviewCount: 437,
			Description: "Amnesia Haze is a classic sativa-dominant strain delivering an energetic, uplifting high with a hint of euphoria and a citrusy flavor profile.",
			ImageURL:    "https://images.unsplash.com/photo-1620472444310-5e4ca3bb118f?w=800&auto=format&fit=crop",
		},
		{
			ID: "og1", Name: "OG Kush", Breeder: "Unknown",
			Type: domain.TypeHybrid, THCContent: "20-25%", CBDContent: "0.2%",
			Terpenes: []string{"Myrcene", "Limonene", "Caryophyllene"},
			Effects:  []string{"Relaxing", "Happy", "Euphoric", "Uplifting", "Sleepy"},
			Flavors:  []string{"Earthy", "Pine", "Woody"},
			Rating:   4.8, ReviewCount: 728,
			Description: "OG Kush is a legendary strain thought to be a cross between Chemdawg and Hindu Kush, delivering a powerful combination of head and body effects.",
			ImageURL:    "https://images.unsplash.com/photo-1620472444339-add0d19c1c95?w=800&auto=format&fit=crop",
		},
		{
			ID: "cd1", Name: "Chemdawg", Breeder: "Unknown",
			Type: domain.TypeHybrid, THCContent: "20-25%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Caryophyllene", "Limonene"},
			Effects:  []string{"Relaxing", "Euphoric", "Happy", "Uplifting", "Creative"},
			Flavors:  []string{"Diesel", "Chemical", "Earthy"},
			Rating:   4.6, ReviewCount: 462,
			Description: "Chemdawg is a legendary strain with a strong chemical smell, delivering a cerebral high paired with strong physical relaxation. Parent of Sour Diesel and OG Kush.",
			ImageURL:    "https://images.unsplash.com/photo-1620472444235-7eb3d4d02d58?w=800&auto=format&fit=crop",
		},
		{
			ID: "dp1", Name: "Durban Poison", Breeder: "African landrace",
			Type: domain.TypeSativa, THCContent: "15-25%", CBDContent: "0.1%",
			Terpenes: []string{"Terpinolene", "Myrcene", "Pinene"},
			Effects:  []string{"Energetic", "Creative", "Focused", "Uplifting", "Happy"},
			Flavors:  []string{"Sweet", "Earthy", "Pine"},
			Rating:   4.5, ReviewCount: 436,
			Description: "Durban Poison is a pure African sativa named after the South African port city of Durban, with a sweet smell and energetic, uplifting effects great for productive daytime use.",
			ImageURL:    "https://images.unsplash.com/photo-1620218931658-66a51e934f44?w=800&auto=format&fit=crop",
		},
		{
			ID: "tm1", Name: "Trainwreck", Breeder: "Unknown",
			Type: domain.TypeHybrid, THCContent: "18-25%", CBDContent: "0.2%",
			Terpenes: []string{"Myrcene", "Pinene", "Terpinolene"},
			Effects:  []string{"Euphoric", "Happy", "Energetic", "Creative", "Relaxing"},
			Flavors:  []string{"Earthy", "Lemon", "Pine"},
			Rating:   4.4, ReviewCount: 384,
			Description: "Trainwreck is a mind-bending hybrid with potent sativa effects that begins with a surge of euphoria, creativity, and happiness before melting into relaxation.",
			ImageURL:    "https://images.unsplash.com/photo-1620218942412-2af17de59b2c?w=800&auto=format&fit=crop",
		},
		{
			ID: "bb2", Name: "Blueberry", Breeder: "DJ Short",
			Type: domain.TypeIndica, THCContent: "15-24%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Pinene", "Caryophyllene"},
			Effects:  []string{"Relaxing", "Happy", "Euphoric", "Sleepy", "Creative"},
			Flavors:  []string{"Berry", "Sweet", "Earthy"},
			Rating:   4.5, ReviewCount: 421,
			Description: "Blueberry is a popular indica developed by DJ Short in the late 1970s, famous for its distinct blueberry aroma. Deeply relaxing and euphoric, perfect for stress relief and evening use.",
			ImageURL:    "https://images.unsplash.com/photo-1620472444040-539acdb4f259?w=800&auto=format&fit=crop",
		},
		{
			ID: "wp1", Name: "Wedding Cake", Breeder: "Seed Junky Genetics",
			Type: domain.TypeHybrid, THCContent: "20-25%", CBDContent: "0.1%",
			Terpenes: []string{"Limonene", "Caryophyllene", "Myrcene"},
			Effects:  []string{"Relaxing", "Happy", "Euphoric", "Creative", "Uplifting"},
			Flavors:  []string{"Sweet", "Vanilla", "Earthy"},
			Rating:   4.7, ReviewCount: 512,
			Description: "Wedding Cake, also known as Pink Cookies, is a cross of Triangle Kush and Animal Mints providing relaxing and euphoric effects that calm the body without sedating the mind.",
			ImageURL:    "https://images.unsplash.com/photo-1620472444424-d79d34dfc891?w=800&auto=format&fit=crop",
		},
		{
			ID: "gp1", Name: "Green Poison", Breeder: "Sweet Seeds",
			Type: domain.TypeHybrid, THCContent: "15-20%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Pinene", "Limonene"},
			Effects:  []string{"Relaxing", "Euphoric", "Creative", "Happy", "Energetic"},
			Flavors:  []string{"Sweet", "Fruity", "Citrus"},
			Rating:   4.3, ReviewCount: 362,
			Description: "Green Poison is a fast-flowering hybrid from Sweet Seeds with initial cerebral stimulation followed by physical relaxation and a sweet, fruity aroma.",
			ImageURL:    "https://images.unsplash.com/photo-1620554740172-8ed703237dde?w=800&auto=format&fit=crop",
		},
		{
			ID: "bd1", Name: "Blue Dream", Breeder: "DJ Short",
			Type: domain.TypeHybrid, THCContent: "17-24%", CBDContent: "0.1-0.2%",
			Terpenes: []string{"Myrcene", "Pinene"},
			Effects:  []string{"Happy", "Relaxing", "Creative"},
			Flavors:  []string{"Blueberry", "Sweet", "Herbal"},
			Rating:   4.4, ReviewCount: 523,
			Description: "Blue Dream is a sativa-dominant hybrid that balances full-body relaxation with gentle cerebral invigoration, created by crossing Blueberry with Haze.",
			ImageURL:    "https://images.unsplash.com/photo-1603909223358-05f2b6cdb7c0?w=800&auto=format&fit=crop",
		},
		{
			ID: "pkk1", Name: "Pink Kush", Breeder: "Unknown",
			Type: domain.TypeIndica, THCContent: "20-25%", CBDContent: "0.1%",
			Terpenes: []string{"Myrcene", "Limonene", "Caryophyllene"},
			Effects:  []string{"Relaxing", "Happy", "Euphoric", "Sleepy", "Pain Relief"},
			Flavors:  []string{"Sweet", "Floral", "Vanilla"},
			Rating:   4.8, ReviewCount: 612,
			Description: "Pink Kush, related to OG Kush, is a potent indica known for a strong body high, often used for pain relief and insomnia.",
			ImageURL:    "https://images.unsplash.com/photo-1603909223429-69bb7101f420?w=800&auto=format&fit=crop",
		},
	}
}

// seedPriorityIDs lists the statically curated priority subset used until the
// first out-of-band popularity refresh lands.
func seedPriorityIDs() []string {
	return []string{"gs1", "bd1", "gg4", "sd1", "pkk1", "wp1"}
}
