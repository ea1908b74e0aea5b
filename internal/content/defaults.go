package content

// DefaultContent returns the compiled-in document used when no stored
// configuration can be loaded from anywhere. It mirrors the marketing site's
// launch content, so a fresh deployment renders a complete page.
func DefaultContent() SiteContent {
	return SiteContent{
		HeroSlides: []HeroSlide{
			{
				ID:              1,
				Title:           "Discover Paradise",
				Subtitle:        "Santorini, Greece",
				Description:     "Experience breathtaking sunsets and pristine white architecture",
				BackgroundImage: "/hero/destination5.jpg",
				Gradient:        "from-white-900/80 to-blue-900/60",
				Visible:         true,
				Order:           1,
			},
			{
				ID:              2,
				Title:           "Tropical Escape",
				Subtitle:        "Bali, Indonesia",
				Description:     "Immerse yourself in rich culture and stunning beaches",
				BackgroundImage: "/hero/destination6.jpg",
				Gradient:        "from-white-900/80 to-blue-900/60",
				Visible:         true,
				Order:           2,
			},
			{
				ID:              3,
				Title:           "Alpine Adventure",
				Subtitle:        "Swiss Alps",
				Description:     "Conquer majestic peaks and pristine mountain landscapes",
				BackgroundImage: "/hero/destination7.jpg",
				Gradient:        "from-white-900/80 to-blue-900/60",
				Visible:         true,
				Order:           3,
			},
		},
		Packages: []Package{
			{
				ID:            1,
				Name:          "Santorini Paradise",
				Location:      "Santorini, Greece",
				Price:         1299,
				OriginalPrice: 1599,
				Duration:      "7 Days / 6 Nights",
				Rating:        4.9,
				Reviews:       124,
				MaxPeople:     8,
				Image:         "/gallery/image1.jpeg",
				Images:        []string{"/gallery/image1.jpeg", "/gallery/image2.jpg", "/gallery/image3.jpg"},
				Description:   "Experience the breathtaking beauty of Santorini with its iconic white buildings, blue domes, and stunning sunsets over the Aegean Sea.",
				Highlights: []string{
					"Luxury oceanview accommodation",
					"Private sunset cruise",
					"Wine tasting at local vineyards",
					"Guided tour of Oia village",
					"Traditional Greek cooking class",
					"Airport transfers included",
				},
				Itinerary: []ItineraryDay{
					{Day: 1, Title: "Arrival & Welcome", Description: "Airport pickup, hotel check-in, welcome dinner"},
					{Day: 2, Title: "Oia Exploration", Description: "Guided tour of Oia, sunset viewing, local shopping"},
					{Day: 3, Title: "Wine & Culture", Description: "Vineyard tours, wine tasting, cultural experiences"},
					{Day: 4, Title: "Beach Day", Description: "Relaxation at Red Beach, swimming, beachside lunch"},
					{Day: 5, Title: "Cruise Adventure", Description: "Private sunset cruise, dinner on board"},
					{Day: 6, Title: "Cooking & Leisure", Description: "Greek cooking class, free time for shopping"},
					{Day: 7, Title: "Departure", Description: "Hotel checkout, airport transfer"},
				},
				Included:    []string{"Accommodation", "Meals", "Transportation", "Tours", "Activities"},
				NotIncluded: []string{"International flights", "Travel insurance", "Personal expenses"},
				Featured:    true,
				Category:    "Luxury",
				Status:      PackageStatusActive,
			},
			{
				ID:            2,
				Name:          "Bali Adventure",
				Location:      "Bali, Indonesia",
				Price:         899,
				OriginalPrice: 1199,
				Duration:      "10 Days / 9 Nights",
				Rating:        4.7,
				Reviews:       98,
				MaxPeople:     12,
				Image:         "/gallery/image2.jpg",
				Images:        []string{"/gallery/image2.jpg", "/gallery/image1.jpeg", "/gallery/image3.jpg"},
				Description:   "Discover the magic of Bali with its beautiful beaches, ancient temples, lush rice terraces, and vibrant cultural experiences.",
				Highlights: []string{
					"Beachfront resort accommodation",
					"Temple hopping tours",
					"Rice terrace trekking",
					"Traditional dance performances",
					"Balinese cooking workshop",
					"Spa treatments included",
				},
				Itinerary: []ItineraryDay{
					{Day: 1, Title: "Arrival in Bali", Description: "Airport transfer, hotel check-in, welcome ceremony"},
					{Day: 2, Title: "Ubud Cultural Tour", Description: "Visit temples, art villages, and rice terraces"},
					{Day: 3, Title: "Adventure Day", Description: "White water rafting and jungle trekking"},
					{Day: 4, Title: "Beach Relaxation", Description: "Free day at beautiful beaches"},
					{Day: 5, Title: "Cooking & Spa", Description: "Cooking class and traditional spa treatments"},
				},
				Included:    []string{"Accommodation", "Most meals", "Tours", "Activities", "Spa"},
				NotIncluded: []string{"International flights", "Some meals", "Personal expenses"},
				Featured:    false,
				Category:    "Adventure",
				Status:      PackageStatusActive,
			},
			{
				ID:            3,
				Name:          "Swiss Alps Escape",
				Location:      "Swiss Alps, Switzerland",
				Price:         1599,
				OriginalPrice: 1999,
				Duration:      "8 Days / 7 Nights",
				Rating:        4.9,
				Reviews:       87,
				MaxPeople:     6,
				Image:         "/gallery/image3.jpg",
				Images:        []string{"/gallery/image3.jpg", "/gallery/image1.jpeg", "/gallery/image2.jpg"},
				Description:   "Adventure awaits in the majestic Swiss Alps with pristine mountain lakes, snow-capped peaks, and charming alpine villages.",
				Highlights: []string{
					"Mountain lodge accommodation",
					"Cable car rides",
					"Alpine hiking trails",
					"Lake boat cruises",
					"Traditional Swiss cuisine",
					"Photography workshops",
				},
				Itinerary: []ItineraryDay{
					{Day: 1, Title: "Arrival in Zurich", Description: "Transfer to alpine resort, welcome dinner"},
					{Day: 2, Title: "Jungfraujoch", Description: "Top of Europe excursion"},
					{Day: 3, Title: "Lake Cruise", Description: "Scenic boat ride and village visits"},
					{Day: 4, Title: "Hiking Day", Description: "Alpine trails and mountain photography"},
					{Day: 5, Title: "Adventure Activities", Description: "Paragliding and mountain biking options"},
				},
				Included:    []string{"Accommodation", "Meals", "Cable cars", "Tours", "Activities"},
				NotIncluded: []string{"International flights", "Travel insurance", "Personal gear"},
				Featured:    true,
				Category:    "Adventure",
				Status:      PackageStatusActive,
			},
		},
		Company: Company{
			Name:    "Dream Holidays",
			Email:   "info@dreamholidays.com",
			Phone:   "+1 (555) 123-4567",
			Address: "123 Travel Street, Adventure City, AC 12345",
			Visible: true,
		},
		Stats: Stats{
			HappyCustomers:     0,
			DestinationsServed: 0,
			YearsExperience:    0,
			ToursCompleted:     0,
			Visible:            true,
		},
		Testimonials: Testimonials{
			Title:    "What Our Travelers Say",
			Subtitle: "Real stories from real adventures",
			Reviews: []Review{
				{ID: 1, Name: "Aisha K.", Location: "Santorini, Greece", Rating: 5, Comment: "Our trip was flawless. Dream Holidays took care of everything and exceeded expectations.", Image: "/testimonials/test1.jpeg"},
				{ID: 2, Name: "Carlos M.", Location: "Bali, Indonesia", Rating: 5, Comment: "Amazing service and great value. Will book again!", Image: "/testimonials/test2.jpg"},
				{ID: 3, Name: "Priya S.", Location: "Swiss Alps", Rating: 5, Comment: "Beautifully planned itinerary and friendly guides. Highly recommend.", Image: "/testimonials/test3.jpg"},
			},
			Visible: true,
		},
		Gallery: Gallery{
			Title:    "Destination Gallery",
			Subtitle: "Moments captured by our travelers",
			Images: []GalleryImage{
				{ID: 1, Src: "/gallery/image1.jpeg", Alt: "Santorini sunset"},
				{ID: 2, Src: "/gallery/image2.jpg", Alt: "Bali rice terraces"},
				{ID: 3, Src: "/gallery/image3.jpg", Alt: "Swiss alpine lake"},
			},
			Visible: true,
		},
		WhyChoose: WhyChoose{
			Title:    "Why Choose Us",
			Subtitle: "Travel made effortless",
			Features: []Feature{
				{ID: 1, Icon: "globe", Title: "Handpicked Destinations", Description: "Every destination is scouted and vetted by our own travel team."},
				{ID: 2, Icon: "shield", Title: "Trusted Service", Description: "Transparent pricing and support before, during, and after your trip."},
				{ID: 3, Icon: "heart", Title: "Tailored Experiences", Description: "Itineraries shaped around how you actually like to travel."},
			},
			Visible: true,
		},
		Contact: Contact{
			Title:    "Get In Touch",
			Subtitle: "We would love to plan your next adventure",
			Visible:  true,
		},
		Social: Social{
			Title:    "Follow Our Journey",
			Subtitle: "Daily inspiration from around the world",
			Platforms: []SocialPlatform{
				{Name: "Instagram", URL: "https://instagram.com/dreamholidays", Icon: "instagram", Followers: "12.4K"},
				{Name: "Facebook", URL: "https://facebook.com/dreamholidays", Icon: "facebook", Followers: "8.9K"},
				{Name: "Twitter", URL: "https://twitter.com/dreamholidays", Icon: "twitter", Followers: "5.2K"},
			},
			Posts:   SocialPosts{},
			Visible: true,
		},
		Footer: Footer{
			Logo:         "Dream Holidays",
			About:        "Crafting unforgettable journeys to the world's most beautiful destinations since day one.",
			QuickLinks:   []string{"Home", "Packages", "Gallery", "Contact"},
			Destinations: []string{"Santorini", "Bali", "Swiss Alps"},
			Copyright:    "© Dream Holidays. All rights reserved.",
			Visible:      true,
		},
	}
}
