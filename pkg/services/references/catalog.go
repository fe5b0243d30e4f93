package references

import "github.com/ngo-tools/grant-forge/pkg/models/domain"

// The catalog is fixed: references are selected by keyword match, never
// fetched or generated. Entries within a group keep insertion order.

var youthEducationRefs = []domain.Reference{
	{
		ID:        "1",
		Title:     "Youth Employment in Sub-Saharan Africa: Progress and Prospects",
		Source:    "World Bank Africa Region",
		Year:      "2024",
		URL:       "https://www.worldbank.org/en/region/afr",
		Relevance: "Provides data on youth unemployment challenges and effective intervention strategies",
	},
	{
		ID:        "2",
		Title:     "The Impact of Skills Training Programs on Youth Employment: A Systematic Review",
		Source:    "International Labour Organization (ILO)",
		Year:      "2023",
		URL:       "https://www.ilo.org/global/research",
		Relevance: "Evidence-based analysis of what works in youth skills development programs",
	},
	{
		ID:        "3",
		Title:     "Education for Sustainable Development: Global Action Programme",
		Source:    "UNESCO",
		Year:      "2024",
		URL:       "https://en.unesco.org/themes/education-sustainable-development",
		Relevance: "Framework for linking education to sustainable development goals",
	},
}

var healthRefs = []domain.Reference{
	{
		ID:        "1",
		Title:     "Universal Health Coverage: Global Monitoring Report 2024",
		Source:    "World Health Organization (WHO)",
		Year:      "2024",
		URL:       "https://www.who.int/publications/i/item/9789240074433",
		Relevance: "Latest data on global health access and intervention effectiveness",
	},
	{
		ID:        "2",
		Title:     "Community Health Workers: A Critical Component of Primary Healthcare",
		Source:    "The Lancet Global Health",
		Year:      "2023",
		URL:       "https://www.thelancet.com/journals/langlo",
		Relevance: "Research on community-based health intervention models",
	},
}

var environmentAgricultureRefs = []domain.Reference{
	{
		ID:        "1",
		Title:     "Climate Change and Food Security: Risks and Responses",
		Source:    "Food and Agriculture Organization (FAO)",
		Year:      "2024",
		URL:       "https://www.fao.org/climate-change",
		Relevance: "Analysis of climate impacts on food systems and adaptation strategies",
	},
	{
		ID:        "2",
		Title:     "Sustainable Agriculture Practices: Evidence from the Field",
		Source:    "International Fund for Agricultural Development (IFAD)",
		Year:      "2023",
		URL:       "https://www.ifad.org/en/web/knowledge",
		Relevance: "Best practices in sustainable agriculture and rural development",
	},
}

var womenGenderRefs = []domain.Reference{
	{
		ID:        "1",
		Title:     "Gender Equality and Women's Empowerment: 2024 Progress Report",
		Source:    "UN Women",
		Year:      "2024",
		URL:       "https://www.unwomen.org/en/digital-library",
		Relevance: "Current state of gender equality and evidence-based interventions",
	},
	{
		ID:        "2",
		Title:     "Economic Empowerment of Women: What Works and Why",
		Source:    "World Bank Gender Innovation Lab",
		Year:      "2023",
		URL:       "https://www.worldbank.org/en/research/gil",
		Relevance: "Research on effective approaches to women's economic empowerment",
	},
}

var povertySDGRefs = []domain.Reference{
	{
		ID:        "1",
		Title:     "Poverty and Shared Prosperity 2024: Global Outlook",
		Source:    "World Bank Group",
		Year:      "2024",
		URL:       "https://www.worldbank.org/en/research/brief/poverty-and-shared-prosperity",
		Relevance: "Latest global poverty data and trends",
	},
	{
		ID:        "2",
		Title:     "The Sustainable Development Goals Report 2024",
		Source:    "United Nations Department of Economic and Social Affairs",
		Year:      "2024",
		URL:       "https://unstats.un.org/sdgs/report/2024",
		Relevance: "Progress toward SDGs and evidence-based solutions",
	},
	{
		ID:        "3",
		Title:     "Community-Driven Development: Lessons from Implementation",
		Source:    "Overseas Development Institute (ODI)",
		Year:      "2023",
		URL:       "https://odi.org/en/publications",
		Relevance: "Evidence on effective community development approaches",
	},
}

var technologyRef = domain.Reference{
	ID:        "4",
	Title:     "Digital Transformation for Development: Emerging Trends and Evidence",
	Source:    "GSMA Mobile for Development",
	Year:      "2024",
	URL:       "https://www.gsma.com/mobilefordevelopment",
	Relevance: "Latest evidence on using technology for development impact",
}
