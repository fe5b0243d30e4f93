package enrich

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/services/references"
)

// funderCaseContext slants the executive summary to the funder's
// current situation.
var funderCaseContext = map[domain.FunderCase]string{
	domain.FunderCaseExpansion:    "seeks to expand its impact and explore innovative solutions",
	domain.FunderCaseCrisis:       "faces urgent challenges requiring immediate intervention",
	domain.FunderCaseSatisfaction: "maintains strong programs while seeking continuous improvement",
	domain.FunderCaseArrogance:    "has established leadership and seeks to maintain its position",
}

// ExpandProposal turns a proposal form into enriched section content.
// Required fields (organization name, project title) are validated by
// the caller before expansion; this function never fails.
func ExpandProposal(f *domain.ProposalForm, src Source) *domain.ProposalContent {
	theme := GenerateTheme(f, src)

	var refs []domain.Reference
	if strings.TrimSpace(f.ReferenceTopics) != "" {
		refs = references.Search(f.ReferenceTopics, f.ProjectTitle, f.TargetBeneficiaries)
	}

	return &domain.ProposalContent{
		Theme:                  theme,
		ExecutiveSummary:       proposalExecutiveSummary(f, theme),
		ProblemStatement:       proposalProblemStatement(f),
		ProjectGoals:           proposalProjectGoals(f),
		Activities:             proposalActivities(f),
		ExpectedOutcomes:       proposalOutcomes(f),
		OrganizationExperience: proposalOrgExperience(f),
		BudgetOverview:         proposalBudget(f),
		WhyUs:                  proposalWhyUs(f),
		References:             refs,
	}
}

func proposalExecutiveSummary(f *domain.ProposalForm, theme string) string {
	caseContext, ok := funderCaseContext[f.FunderCase]
	if !ok {
		caseContext = "create positive change"
	}

	return fmt.Sprintf(`%s respectfully submits this proposal for "%s" to %s.

THEME: %s

This initiative directly addresses %s while aligning with %s's mission to %s.

PROJECT AT A GLANCE:
• Funding Requested: $%s over %s
• Direct Beneficiaries: %s
• Expected Outcomes: Measurable improvements in %s

%s brings proven expertise, strong community relationships, and a track record of successful program delivery. This proposal demonstrates our commitment to sustainable impact and accountability to stakeholders.

We believe this partnership represents a strategic investment in long-term community transformation.`,
		f.OrganizationName,
		f.ProjectTitle,
		orDefault(f.FunderName, "your esteemed organization"),
		theme,
		orDefault(f.CriticalIssues, "critical community needs"),
		orDefault(f.FunderName, "the funder"),
		caseContext,
		orDefault(f.FundingAmount, "0"),
		orDefault(f.ProjectDuration, "the project period"),
		orDefault(f.TargetBeneficiaries, "Underserved community members"),
		orDefault(firstWords(f.ExpectedOutcomes, 8), "target areas"),
		f.OrganizationName,
	)
}

func proposalProblemStatement(f *domain.ProposalForm) string {
	if strings.TrimSpace(f.ProblemStatement) == "" {
		return ""
	}

	return fmt.Sprintf(`UNDERSTANDING THE CHALLENGE

%s

THE STAKES

Without targeted intervention, these challenges will continue to affect %s, perpetuating cycles of disadvantage and undermining community resilience. The window of opportunity to create meaningful change is now.

EVIDENCE BASE

Research and community consultations consistently demonstrate the urgent need for comprehensive, culturally appropriate solutions. Existing services are insufficient to meet the scale of need, leaving significant gaps that this project is designed to address.

WHY NOW?

The timing is critical. Delayed action means continued suffering for those we aim to serve. %s at this juncture will enable us to intervene before the situation deteriorates further.`,
		f.ProblemStatement,
		orDefault(f.TargetBeneficiaries, "vulnerable populations"),
		orDefault(f.FunderName, "Your support"),
	)
}

func proposalProjectGoals(f *domain.ProposalForm) string {
	if strings.TrimSpace(f.ProjectGoals) == "" {
		return ""
	}

	return fmt.Sprintf(`OVERALL GOAL

%s

SMART OBJECTIVES

1. SPECIFIC: Deliver targeted interventions that address the identified needs of %s

2. MEASURABLE: Achieve quantifiable improvements in key outcome indicators within the project timeframe

3. ACHIEVABLE: Leverage %s's existing capacity and community relationships to ensure realistic goal attainment

4. RELEVANT: Align all activities with both community needs and %s strategic priorities

5. TIME-BOUND: Complete all major deliverables within %s

SUCCESS INDICATORS

• Increased access to services among target populations
• Measurable improvements in knowledge, skills, and behaviors
• Strengthened community structures and support networks
• Enhanced organizational capacity for program delivery
• Positive feedback from beneficiaries and stakeholders`,
		f.ProjectGoals,
		orDefault(f.TargetBeneficiaries, "our target population"),
		f.OrganizationName,
		orDefault(f.FunderName, "funder"),
		orDefault(f.ProjectDuration, "the specified timeframe"),
	)
}

func proposalActivities(f *domain.ProposalForm) string {
	if strings.TrimSpace(f.Activities) == "" {
		return ""
	}

	return fmt.Sprintf(`PROGRAM ACTIVITIES

%s

IMPLEMENTATION APPROACH

Our methodology follows best practices in community development, ensuring that activities are:

• Community-Driven: Designed with input from beneficiaries and local stakeholders
• Evidence-Based: Grounded in proven approaches and adapted to local context
• Culturally Appropriate: Respectful of community values and traditions
• Sustainable: Building local capacity for long-term continuation

PHASE 1: FOUNDATION (Months 1-3)
- Establish project infrastructure and team
- Conduct stakeholder engagement and partnership development
- Finalize detailed implementation plans and monitoring frameworks
- Launch community awareness and mobilization efforts

PHASE 2: CORE PROGRAM DELIVERY (Months 4-%d)
- Implement primary activities as outlined above
- Conduct regular monitoring and quality assurance
- Facilitate community engagement and feedback mechanisms
- Document lessons learned and best practices

PHASE 3: CONSOLIDATION (Final 3 Months)
- Evaluate program outcomes against established indicators
- Develop sustainability plans and transition strategies
- Prepare final reports and dissemination materials
- Plan for scale-up or replication where appropriate`,
		f.Activities,
		durationMonths(f.ProjectDuration)-3,
	)
}

// durationMonths reads the leading number out of a free-text duration
// like "12 months", defaulting to 12 when missing or unparseable.
func durationMonths(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 12
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 12
	}
	return n
}

func proposalOutcomes(f *domain.ProposalForm) string {
	if strings.TrimSpace(f.ExpectedOutcomes) == "" {
		return ""
	}

	return fmt.Sprintf(`ANTICIPATED OUTCOMES

%s

IMPACT PROJECTIONS

Direct Impact:
• %s will receive comprehensive support tailored to their needs
• Improved access to essential services and resources
• Enhanced knowledge, skills, and capabilities for self-sufficiency
• Increased community engagement and participation

Indirect Impact:
• Strengthened community structures and support networks
• Increased awareness and reduced stigma around key issues
• Model for replication in similar contexts
• Contribution to broader sector learning and development

LONG-TERM VISION

This project contributes to a broader vision of thriving, resilient communities where all members have equitable opportunities to reach their full potential. Success will be measured not only in immediate outputs but in sustained positive change that continues long after project completion.

SUSTAINABILITY PLAN

We are committed to ensuring that project benefits continue beyond the funding period through:
• Community capacity building
• Partnership development
• Resource mobilization strategies
• Integration with existing systems and services`,
		f.ExpectedOutcomes,
		orDefault(f.TargetBeneficiaries, "Target beneficiaries"),
	)
}

func proposalOrgExperience(f *domain.ProposalForm) string {
	baseText := strings.TrimSpace(f.OrganizationExperience)
	if baseText == "" {
		baseText = fmt.Sprintf(
			"%s has established itself as a trusted community partner with a proven track record of successful program implementation.",
			f.OrganizationName)
	}

	uniqueValueBlock := ""
	if f.UniqueValue != "" {
		uniqueValueBlock = fmt.Sprintf("UNIQUE VALUE PROPOSITION\n\n%s", f.UniqueValue)
	}

	return fmt.Sprintf(`WHY %s?

%s

%s

ORGANIZATIONAL STRENGTHS

1. EXPERTISE AND QUALIFICATIONS
Our team brings together diverse expertise in program management, community development, monitoring and evaluation, and financial administration. Key staff members have extensive experience in designing and delivering similar initiatives, with deep understanding of local context and community dynamics.

2. GOVERNANCE AND ACCOUNTABILITY
%s maintains robust governance structures, including an active board of directors that provides strategic oversight and ensures organizational accountability. We adhere to best practices in financial management, transparency, and ethical program delivery.

3. TRACK RECORD OF SUCCESS
Our previous projects have demonstrated measurable impact and strong community uptake. We have successfully managed grants from multiple funding sources, consistently meeting or exceeding program targets and reporting requirements.

4. COMMUNITY RELATIONSHIPS
We have built strong, trust-based relationships with the communities we serve. These relationships are the foundation of our work and ensure that our interventions are relevant, accepted, and sustainable.

KEY PERSONNEL

Our project team includes experienced professionals with relevant qualifications and demonstrated competence in:
• Project management and coordination
• Community engagement and mobilization
• Technical program delivery
• Monitoring, evaluation, and learning
• Financial management and reporting`,
		strings.ToUpper(f.OrganizationName),
		baseText,
		uniqueValueBlock,
		f.OrganizationName,
	)
}

func proposalBudget(f *domain.ProposalForm) string {
	baseText := strings.TrimSpace(f.BudgetOverview)
	if baseText == "" {
		baseText = fmt.Sprintf(
			"The total project budget of $%s represents a cost-effective investment in sustainable community change.",
			orDefault(f.FundingAmount, "0"))
	}

	return fmt.Sprintf(`BUDGET JUSTIFICATION

%s

VALUE FOR MONEY

This budget has been carefully developed to maximize impact while ensuring prudent financial management. All costs are based on local market rates and reflect our commitment to efficient resource utilization.

BUDGET ALLOCATION FRAMEWORK

Personnel (60-70%%): Salaries and benefits for project staff, including program managers, field coordinators, and support personnel. This investment ensures we attract and retain qualified professionals committed to project success.

Program Activities (20-25%%): Direct costs associated with service delivery, including materials, equipment, venue rentals, transportation, and participant support. These resources enable effective implementation of planned activities.

Administration and Overhead (10-15%%): Essential operational costs including office expenses, communications, utilities, and organizational support services necessary for project management.

Monitoring and Evaluation (5%%): Dedicated resources for tracking progress, measuring outcomes, conducting surveys and assessments, and documenting lessons learned.

Contingency (5%%): Reserve for unforeseen expenses and opportunities that may arise during implementation, ensuring project resilience and adaptability.

COST-EFFECTIVENESS

We have designed this budget to achieve maximum impact per dollar invested. Our approach includes:
• Leveraging existing organizational infrastructure
• Building on established community relationships
• Using volunteer support where appropriate
• Partnering with local organizations to reduce costs
• Implementing efficient procurement practices`,
		baseText,
	)
}

func proposalWhyUs(f *domain.ProposalForm) string {
	concern := "seeks partners who can deliver measurable results"
	if f.CriticalIssues != "" {
		concern = fmt.Sprintf("is particularly concerned with %s", f.CriticalIssues)
	}

	valueBullets := f.UniqueValue
	if valueBullets == "" {
		valueBullets = "• Proven methodology and approach\n• Strong track record of success\n• Deep community connections\n• Commitment to accountability and transparency"
	}

	return fmt.Sprintf(`WHY PARTNER WITH %s?

ADDRESSING YOUR CRITICAL ISSUES

We understand that %s %s. Our proposal directly addresses these priorities through:

%s

ALIGNMENT WITH YOUR MISSION

This project aligns with %s strategic objectives by:
• Contributing to sustainable community development
• Demonstrating measurable impact and accountability
• Building local capacity for long-term sustainability
• Generating knowledge and best practices for the sector

OUR COMMITMENT

With your support, %s will:
• Deliver high-quality programs that meet or exceed targets
• Maintain transparent communication and regular reporting
• Adapt and respond to emerging challenges and opportunities
• Ensure every dollar invested creates maximum impact
• Build sustainable systems that continue beyond the funding period

We look forward to the opportunity to partner with %s to create lasting positive change in the lives of %s.`,
		strings.ToUpper(f.OrganizationName),
		orDefault(f.FunderName, "your organization"),
		concern,
		valueBullets,
		orDefault(f.FunderName, "your"),
		f.OrganizationName,
		orDefault(f.FunderName, "you"),
		orDefault(f.TargetBeneficiaries, "those we serve"),
	)
}
