package content

import "time"

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

// Canonical returns a fresh copy of the collections published by the website.
func Canonical() Data {
	return Data{
		Payams:     canonicalPayams(),
		Activities: canonicalActivities(),
		Leaders:    canonicalLeaders(),
		News:       canonicalNews(),
		Events:     canonicalEvents(),
		Donations:  canonicalDonations(),
		Pledges:    canonicalPledges(),
		Media:      canonicalMedia(),
	}
}

func canonicalPayams() []Payam {
	return []Payam{
		{
			ID: "1", Name: "Ajuong", Slug: "ajuong", RequestedAmount: 150000, RaisedAmount: 45000,
			Description: "Ajuong Payam focuses on agricultural development and water infrastructure for sustainable resettlement.",
		},
		{
			ID: "2", Name: "Kongor", Slug: "kongor", RequestedAmount: 180000, RaisedAmount: 67000,
			Description: "Kongor Payam prioritizes education facilities and healthcare infrastructure development.",
		},
		{
			ID: "3", Name: "Lith", Slug: "lith", RequestedAmount: 120000, RaisedAmount: 38000,
			Description: "Lith Payam emphasizes community centers and local governance structures.",
		},
		{
			ID: "4", Name: "Nyuak", Slug: "nyuak", RequestedAmount: 200000, RaisedAmount: 78000,
			Description: "Nyuak Payam focuses on comprehensive infrastructure and economic development.",
		},
		{
			ID: "5", Name: "Pakeer", Slug: "pakeer", RequestedAmount: 135000, RaisedAmount: 41000,
			Description: "Pakeer Payam prioritizes road infrastructure and market development.",
		},
		{
			ID: "6", Name: "Pawuoi", Slug: "pawuoi", RequestedAmount: 165000, RaisedAmount: 52000,
			Description: "Pawuoi Payam emphasizes youth programs and skills development initiatives.",
		},
	}
}

func canonicalActivities() []Activity {
	return []Activity{
		{
			ID: "1", Title: "Water Well Construction - Phase 1", PayamID: "1",
			Description: "Construction of 5 water wells to provide clean water access for 500 families in Ajuong.",
			Status:      ActivityOngoing, StartDate: day("2024-01-15"), EndDate: day("2024-06-30"),
			Budget: 25000, Type: ActivityWater,
		},
		{
			ID: "2", Title: "Primary School Building", PayamID: "2",
			Description: "Building a 6-classroom primary school with library and administrative offices.",
			Status:      ActivityPlanned, StartDate: day("2024-03-01"), EndDate: day("2024-12-31"),
			Budget: 45000, Type: ActivityEducation,
		},
		{
			ID: "3", Title: "Community Center Construction", PayamID: "3",
			Description: "Multi-purpose community center for meetings, events, and local governance.",
			Status:      ActivityCompleted, StartDate: day("2023-08-01"), EndDate: day("2023-12-15"),
			Budget: 20000, Type: ActivityCommunity,
		},
		{
			ID: "4", Title: "Health Clinic Establishment", PayamID: "4",
			Description: "Setting up a basic health clinic with medical supplies and trained staff for Nyuak.",
			Status:      ActivityOngoing, StartDate: day("2024-02-01"), EndDate: day("2024-08-31"),
			Budget: 35000, Type: ActivityHealthcare,
		},
		{
			ID: "5", Title: "Road Infrastructure Development", PayamID: "5",
			Description: "Building 15km of all-weather roads connecting Pakeer to main transportation routes.",
			Status:      ActivityPlanned, StartDate: day("2024-04-01"), EndDate: day("2024-11-30"),
			Budget: 60000, Type: ActivityInfrastructure,
		},
		{
			ID: "6", Title: "Youth Skills Training Center", PayamID: "6",
			Description: "Vocational training center offering carpentry, tailoring, and agriculture skills.",
			Status:      ActivityOngoing, StartDate: day("2024-01-20"), EndDate: day("2024-09-30"),
			Budget: 28000, Type: ActivityEconomic,
		},
		{
			ID: "7", Title: "Water Well Construction - Phase 2", PayamID: "1",
			Description: "Additional 3 water wells to extend coverage to remote areas of Ajuong.",
			Status:      ActivityPlanned, StartDate: day("2024-07-01"), EndDate: day("2024-12-31"),
			Budget: 18000, Type: ActivityWater,
		},
		{
			ID: "8", Title: "Market Infrastructure", PayamID: "5",
			Description: "Construction of covered market stalls and storage facilities.",
			Status:      ActivityPlanned, StartDate: day("2024-05-15"), EndDate: day("2024-10-31"),
			Budget: 22000, Type: ActivityEconomic,
		},
	}
}

func canonicalLeaders() []Leader {
	return []Leader{
		{
			ID: "1", Name: "Lt. Gen. Biar Mading Biar", Title: "Chairperson", Group: GroupAssociation,
			Bio: "Lt. Gen. Biar Mading Biar serves as the Chairperson of TECA, bringing extensive leadership " +
				"experience and dedication to community development and transparency. His military background " +
				"provides strong organizational skills and commitment to serving the Twic East community.",
		},
		{
			ID: "2", Name: "Gen. Philip Aguer Panyang", Title: "Secretary", Group: GroupAssociation,
			Bio: "Gen. Philip Aguer Panyang serves as Secretary of TECA, coordinating administrative functions " +
				"and community outreach programs. His leadership experience and commitment to community service " +
				"make him an invaluable member of the leadership team.",
		},
		{
			ID: "3", Name: "Deng Abraham Akech", Title: "Legal Advisor", Group: GroupAssociation,
			Bio: "Deng Abraham Akech serves as Legal Advisor to TECA, providing essential legal guidance and " +
				"ensuring compliance with regulations. His expertise in legal matters helps TECA navigate complex " +
				"issues while maintaining transparency and accountability.",
		},
		{
			ID: "4", Name: "Grace Aluel Garang", Title: "Resettlement Coordinator", Group: GroupResettlement,
			Bio: "Grace leads the overall resettlement strategy and coordination across all payams. She has " +
				"extensive experience in humanitarian work and community development.",
		},
		{
			ID: "5", Name: "Abraham Mayom Deng", Title: "Ajuong Payam Coordinator", Group: GroupResettlement, PayamID: "1",
			Bio: "Abraham leads resettlement efforts in Ajuong, focusing on water infrastructure and agricultural development.",
		},
		{
			ID: "6", Name: "Rebecca Ayen Majok", Title: "Kongor Payam Coordinator", Group: GroupResettlement, PayamID: "2",
			Bio: "Rebecca oversees education and healthcare initiatives in Kongor Payam.",
		},
		{
			ID: "7", Name: "Daniel Mabior Garang", Title: "Lith Payam Coordinator", Group: GroupResettlement, PayamID: "3",
			Bio: "Daniel coordinates community center development and local governance structures in Lith.",
		},
		{
			ID: "8", Name: "Sarah Nyankiir Deng", Title: "Nyuak Payam Coordinator", Group: GroupResettlement, PayamID: "4",
			Bio: "Sarah leads comprehensive infrastructure and economic development projects in Nyuak.",
		},
		{
			ID: "9", Name: "James Manyok Akot", Title: "Pakeer Payam Coordinator", Group: GroupResettlement, PayamID: "5",
			Bio: "James focuses on road infrastructure and market development in Pakeer Payam.",
		},
		{
			ID: "10", Name: "Elizabeth Nyandeng Majok", Title: "Pawuoi Payam Coordinator", Group: GroupResettlement, PayamID: "6",
			Bio: "Elizabeth leads youth programs and skills development initiatives in Pawuoi.",
		},
	}
}

func canonicalNews() []Article {
	return []Article{
		{
			ID:          "1",
			Title:       "TECA Launches Major Resettlement Initiative",
			Slug:        "teca-launches-major-resettlement-initiative",
			Excerpt:     "New comprehensive program aims to support 10,000 families returning to Twic East County.",
			PublishedAt: day("2024-01-15"),
			Tags:        []string{"resettlement", "community", "infrastructure"},
			Body: `TECA has officially launched its most ambitious resettlement initiative to date, aimed at supporting the return and sustainable settlement of 10,000 families to Twic East County.

The initiative, spanning six payams, focuses on creating essential infrastructure including water systems, schools, health facilities, and community centers.

"This is a historic moment for our community," said John Deng Majok, TECA Chairman. "We are not just facilitating return, but building foundations for long-term prosperity."

The program will be implemented in phases over the next three years, with transparent fund management and community participation at every level.`,
		},
		{
			ID:          "2",
			Title:       "Water Wells Completed in Ajuong Payam",
			Slug:        "water-wells-completed-ajuong-payam",
			Excerpt:     "Five new water wells provide clean water access to over 500 families.",
			PublishedAt: day("2024-02-20"),
			Tags:        []string{"water", "ajuong", "infrastructure", "health"},
			Body: `The first phase of water infrastructure development in Ajuong Payam has been successfully completed with the installation of five modern water wells.

These wells, strategically located across the payam, now provide clean and reliable water access to over 500 families, significantly improving health outcomes and reducing the daily burden of water collection.

The project was completed on schedule and within budget, demonstrating TECA's commitment to efficient and effective project implementation.`,
		},
		{
			ID:          "3",
			Title:       "Community Leaders Meet to Plan 2024 Development Goals",
			Slug:        "community-leaders-meet-plan-2024-development-goals",
			Excerpt:     "Representatives from all six payams gather to set priorities and coordinate efforts.",
			PublishedAt: day("2024-02-28"),
			Tags:        []string{"leadership", "planning", "community", "development"},
			Body: `Community leaders from all six payams under TECA's resettlement program convened in Juba last week for a comprehensive planning session to establish development priorities for 2024.

The three-day meeting brought together payam coordinators, traditional leaders, and TECA executives to discuss ongoing projects, identify challenges, and set ambitious but achievable goals for the coming year.

Key outcomes include prioritizing education infrastructure in Kongor and Pawuoi, expanding healthcare services in Nyuak, and accelerating road development in Pakeer.

"Unity in planning ensures efficiency in implementation," noted Grace Aluel Garang, TECA's Resettlement Coordinator.`,
		},
		{
			ID:          "4",
			Title:       "Youth Skills Training Program Shows Promising Results",
			Slug:        "youth-skills-training-program-promising-results",
			Excerpt:     "First cohort of 50 young people complete vocational training in Pawuoi.",
			PublishedAt: day("2024-03-05"),
			Tags:        []string{"youth", "education", "economic", "pawuoi", "skills"},
			Body: `The inaugural cohort of TECA's Youth Skills Training Program in Pawuoi Payam has successfully completed their three-month intensive program, with 50 young people now equipped with marketable skills in carpentry, tailoring, and modern agriculture techniques.

The program, led by coordinator Elizabeth Nyandeng Majok, has exceeded expectations with a 95% completion rate and early indicators showing strong employment prospects for graduates.

"These young people are not just learning skills, they're becoming the foundation of our economic recovery," said Elizabeth. "Several have already started their own small businesses."

The success has prompted plans to expand the program to other payams, with Kongor and Nyuak identified as the next locations.`,
		},
		{
			ID:          "5",
			Title:       "Transparency Report: Q1 2024 Financial Update",
			Slug:        "transparency-report-q1-2024-financial-update",
			Excerpt:     "Detailed breakdown of funds raised and spent across all payam projects.",
			PublishedAt: day("2024-04-01"),
			Tags:        []string{"transparency", "finance", "accountability", "report"},
			Body: `In line with TECA's commitment to transparency, we present our comprehensive Q1 2024 financial report, detailing all donations received and expenditures across our six-payam resettlement program.

Total funds raised in Q1: $87,450
Total funds disbursed: $72,300
Administrative costs: 8.5% (well below our 12% target)

Largest expenditures included water well construction in Ajuong ($25,000), health clinic supplies for Nyuak ($18,500), and youth training program materials in Pawuoi ($12,800).

All receipts and documentation are available for public review at our Juba office. We remain committed to the highest standards of financial accountability.`,
		},
	}
}

func canonicalEvents() []Event {
	return []Event{
		{
			ID: "1", Title: "Annual TECA Community Assembly", Slug: "annual-teca-community-assembly",
			Description: "Join us for our annual assembly to review progress, discuss challenges, and plan for the year ahead.",
			StartDate:   day("2024-03-15"), Location: "Juba Community Center", RSVPEnabled: true,
		},
		{
			ID: "2", Title: "Fundraising Dinner Gala", Slug: "fundraising-dinner-gala",
			Description: "An elegant evening of dining, entertainment, and community support for resettlement efforts.",
			StartDate:   day("2024-04-20"), Location: "Pyramid Hotel, Juba", RSVPEnabled: true,
		},
		{
			ID: "3", Title: "Payam Coordinators Workshop", Slug: "payam-coordinators-workshop",
			Description: "Training workshop for all payam coordinators on project management and community engagement.",
			StartDate:   day("2024-05-10"), EndDate: day("2024-05-12"), Location: "TECA Training Center, Juba",
		},
		{
			ID: "4", Title: "Youth Skills Fair and Competition", Slug: "youth-skills-fair-competition",
			Description: "Showcase of skills learned in our training programs with competitions and prizes.",
			StartDate:   day("2024-06-01"), Location: "Pawuoi Community Center", RSVPEnabled: true,
		},
	}
}

func canonicalDonations() []Donation {
	return []Donation{
		{
			ID: "1", DonorName: "Anonymous Donor", Amount: 5000, Method: "Bank Transfer", PayamID: "1",
			Message: "Supporting water infrastructure in Ajuong", IsPublic: true, Verified: true,
			CreatedAt: day("2024-01-10"),
		},
		{
			ID: "2", DonorName: "Community Group - Juba", Amount: 2500, Method: "Cash", PayamID: "2",
			Message: "For education in Kongor", IsPublic: true, Verified: true,
			CreatedAt: day("2024-01-15"),
		},
		{
			ID: "3", Amount: 10000, Method: "Mobile Money", PayamID: "4",
			Message: "General development fund", Verified: true,
			CreatedAt: day("2024-01-20"),
		},
	}
}

func canonicalPledges() []Pledge {
	return []Pledge{
		{
			ID: "1", DonorName: "Local Business Association", Amount: 15000, PayamID: "3",
			Message: "Committed to supporting Lith community center", Status: PledgePending,
			CreatedAt: day("2024-02-01"),
		},
		{
			ID: "2", DonorName: "Diaspora Community - Australia", Amount: 8000, PayamID: "5",
			Message: "For road infrastructure in Pakeer", Status: PledgePending,
			CreatedAt: day("2024-02-05"),
		},
		{
			ID: "3", DonorName: "South Sudan Women's Association", Amount: 12000, PayamID: "2",
			Message: "Supporting education for girls in Kongor", Status: PledgeFulfilled,
			CreatedAt: day("2024-02-15"),
		},
	}
}

func canonicalMedia() []Media {
	return []Media{
		{
			ID: "1", Title: "Water Well Construction Progress in Ajuong", URL: "/media/ajuong-water-well-construction.jpg",
			Type: MediaImage, PayamID: "1", Tags: []string{"water", "infrastructure", "progress"},
			Description: "Workers installing the pump system for the third water well in Ajuong Payam.",
			CreatedAt:   day("2024-02-15"),
		},
		{
			ID: "2", Title: "Community Assembly 2024 Highlights", URL: "/media/community-assembly-2024.mp4",
			Type: MediaVideo, Tags: []string{"community", "assembly", "leadership"},
			Description: "Key moments from our annual community assembly including leadership speeches and community feedback.",
			CreatedAt:   day("2024-03-16"),
		},
		{
			ID: "3", Title: "Youth Training Program Graduation", URL: "/media/youth-graduation-pawuoi.jpg",
			Type: MediaImage, PayamID: "6", Tags: []string{"youth", "education", "graduation"},
			Description: "Proud graduates of the first Youth Skills Training Program cohort in Pawuoi.",
			CreatedAt:   day("2024-03-08"),
		},
		{
			ID: "4", Title: "Kongor School Construction Plans", URL: "/media/kongor-school-blueprints.pdf",
			Type: MediaDocument, PayamID: "2", Tags: []string{"education", "planning", "infrastructure"},
			Description: "Architectural plans for the new 6-classroom primary school in Kongor.",
			CreatedAt:   day("2024-02-28"),
		},
		{
			ID: "5", Title: "Health Clinic Opening in Nyuak", URL: "/media/nyuak-health-clinic-opening.jpg",
			Type: MediaImage, PayamID: "4", Tags: []string{"healthcare", "infrastructure", "community"},
			Description: "Community celebration for the opening of Nyuak's first modern health clinic.",
			CreatedAt:   day("2024-03-20"),
		},
		{
			ID: "6", Title: "Road Construction Progress in Pakeer", URL: "/media/pakeer-road-construction.jpg",
			Type: MediaImage, PayamID: "5", Tags: []string{"infrastructure", "roads", "progress"},
			Description: "Heavy machinery working on the main access road to Pakeer Payam.",
			CreatedAt:   day("2024-03-25"),
		},
	}
}
