package repos

import "aura/internal/domain"

// FixtureCatalog is the bundled product set used until a remote snapshot is
// available. Status is derived from quantity at insert time.
func FixtureCatalog() []domain.Product {
	return []domain.Product{
		{ID: "r1", SKU: "RNG-001", Name: "Eternal Diamond Band", Category: "Rings",
			Description: "A stunning 18k white gold band encrusted with brilliant-cut diamonds. Perfect for anniversaries.",
			Price:       95000, Quantity: 15,
			ImageURL: "https://images.unsplash.com/photo-1605100804763-247f67b3557e?auto=format&fit=crop&q=80&w=600"},
		{ID: "r2", SKU: "RNG-002", Name: "Solitaire Engagement Ring", Category: "Rings",
			Description: "A classic 1-carat round diamond set in a minimalist four-prong platinum band.",
			Price:       150000, Quantity: 5,
			ImageURL: "https://images.unsplash.com/photo-1543508282-6319a3e2621f?auto=format&fit=crop&q=80&w=600"},
		{ID: "r3", SKU: "RNG-003", Name: "Vintage Ruby Halo", Category: "Rings",
			Description: "Oval-cut pigeon blood ruby surrounded by a vintage-style diamond halo in yellow gold.",
			Price:       72000, Quantity: 3,
			ImageURL: "https://images.unsplash.com/photo-1598560912005-597659b7524b?auto=format&fit=crop&q=80&w=600"},
		{ID: "r10", SKU: "RNG-010", Name: "Floral Gold Band", Category: "Rings",
			Description: "Hand-carved floral motifs on a wide 22k yellow gold wedding band.",
			Price:       52000, Quantity: 0,
			ImageURL: "https://images.unsplash.com/photo-1622398476015-51834280f64b?auto=format&fit=crop&q=80&w=600"},
		{ID: "e1", SKU: "EAR-001", Name: "Sapphire Drop Earrings", Category: "Earrings",
			Description: "Deep blue sapphires suspended from elegant gold teardrops. A regal choice for evening wear.",
			Price:       65000, Quantity: 8,
			ImageURL: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?auto=format&fit=crop&q=80&w=600"},
		{ID: "e2", SKU: "EAR-002", Name: "Classic Diamond Studs", Category: "Earrings",
			Description: "Matching pair of 0.5ct brilliant diamonds in white gold basket settings.",
			Price:       110000, Quantity: 12,
			ImageURL: "https://images.unsplash.com/photo-1635767798638-3e25273a8236?auto=format&fit=crop&q=80&w=600"},
		{ID: "e4", SKU: "EAR-004", Name: "Emerald Chandelier Drops", Category: "Earrings",
			Description: "Statement chandelier earrings featuring cascading green emeralds and diamond accents.",
			Price:       88000, Quantity: 2,
			ImageURL: "https://images.unsplash.com/photo-1506630448388-4e683c67ddb0?auto=format&fit=crop&q=80&w=600"},
		{ID: "n1", SKU: "NEC-001", Name: "Pearl Infinity Necklace", Category: "Necklace",
			Description: "Lustrous freshwater pearls on a delicate silver chain. Timeless elegance for any occasion.",
			Price:       32000, Quantity: 20,
			ImageURL: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?auto=format&fit=crop&q=80&w=600"},
		{ID: "n2", SKU: "NEC-002", Name: "22k Gold Choker", Category: "Necklace",
			Description: "Modern gold choker with geometric cutouts, perfect for contemporary bridal looks.",
			Price:       125000, Quantity: 4,
			ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?auto=format&fit=crop&q=80&w=600"},
		{ID: "n4", SKU: "NEC-004", Name: "Emerald Collar Piece", Category: "Necklace",
			Description: "Luxurious collar necklace set with graduated emeralds and baguette diamonds.",
			Price:       210000, Quantity: 1,
			ImageURL: "https://images.unsplash.com/photo-1611085583191-a3b1a308c021?auto=format&fit=crop&q=80&w=600"},
		{ID: "b1", SKU: "BNG-001", Name: "Heritage Gold Bangle", Category: "Bangles",
			Description: "Handcrafted traditional gold bangle with intricate filigree work. A legacy piece.",
			Price:       135000, Quantity: 4,
			ImageURL: "https://images.unsplash.com/photo-1611591437281-460bfbe1520a?auto=format&fit=crop&q=80&w=600"},
		{ID: "b3", SKU: "BNG-003", Name: "Oxidized Silver Bangle Set", Category: "Bangles",
			Description: "Set of 12 stackable silver bangles with traditional tribal engravings.",
			Price:       4500, Quantity: 60,
			ImageURL: "https://images.unsplash.com/photo-1535632787350-4e68ef0ac584?auto=format&fit=crop&q=80&w=600"},
		{ID: "b5", SKU: "BNG-005", Name: "Designer Glass Bangles", Category: "Bangles",
			Description: "Hand-painted decorative glass bangles with gold foil embellishments.",
			Price:       1200, Quantity: 100,
			ImageURL: "https://images.unsplash.com/photo-1620932464016-830219c629a8?auto=format&fit=crop&q=80&w=600"},
		{ID: "br1", SKU: "BRC-001", Name: "Rose Quartz Bracelet", Category: "Bracelets",
			Description: "Smooth rose quartz beads with a sterling silver charm. Subtle and charming.",
			Price:       8500, Quantity: 30,
			ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?auto=format&fit=crop&q=80&w=600"},
		{ID: "br2", SKU: "BRC-002", Name: "Diamond Tennis Bracelet", Category: "Bracelets",
			Description: "A row of 50 perfectly matched diamonds set in a flexible white gold track.",
			Price:       285000, Quantity: 5,
			ImageURL: "https://images.unsplash.com/photo-1611652022419-a9419f74343d?auto=format&fit=crop&q=80&w=600"},
		{ID: "p1", SKU: "PEN-001", Name: "Celestial Moon Pendant", Category: "Pendants",
			Description: "A crescent moon crafted from sterling silver with a single diamond accent.",
			Price:       22000, Quantity: 12,
			ImageURL: "https://images.unsplash.com/photo-1602173574767-37ac01994b2a?auto=format&fit=crop&q=80&w=600"},
		{ID: "p2", SKU: "PEN-002", Name: "Sacred Heart Locket", Category: "Pendants",
			Description: "Antique gold locket with hand-engraved scrollwork and space for a keepsake.",
			Price:       14500, Quantity: 15,
			ImageURL: "https://images.unsplash.com/photo-1635767798638-3e25273a8236?auto=format&fit=crop&q=80&w=600"},
		{ID: "p4", SKU: "PEN-004", Name: "Serene Jade Buddha", Category: "Pendants",
			Description: "Carved natural green jade Buddha figure in a gold bamboo frame.",
			Price:       32000, Quantity: 5,
			ImageURL: "https://images.unsplash.com/photo-1611085583191-a3b1a308c021?auto=format&fit=crop&q=80&w=600"},
	}
}

func fixtureStories() []domain.CommunityPost {
	return []domain.CommunityPost{
		{ID: "story-1", Name: "Arjun S.", Category: "Rings",
			Story: "The Eternal Band was the perfect anniversary surprise. The craftsmanship is unmatched."},
		{ID: "story-2", Name: "Priya K.", Category: "Necklace",
			Story: "Found my wedding jewelry at Aura. It felt like every piece had a soul of its own."},
		{ID: "story-3", Name: "Sarah L.", Category: "Earrings",
			Story: "Minimalist but striking. These studs are now my daily signature."},
	}
}
