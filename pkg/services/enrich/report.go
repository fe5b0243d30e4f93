package enrich

import (
	"fmt"
	"strings"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// ExpandReport turns a report form into enriched section content.
func ExpandReport(f *domain.ReportForm) *domain.ReportContent {
	return &domain.ReportContent{
		ExecutiveSummary:     reportExecutiveSummary(f),
		KeyAchievements:      reportKeyAchievements(f.KeyAchievements),
		BeneficiariesReached: reportBeneficiariesReached(f.BeneficiariesReached),
		ActivitiesCompleted:  reportActivitiesCompleted(f.ActivitiesCompleted),
		Challenges:           reportChallenges(f.Challenges),
		LessonsLearned:       reportLessonsLearned(f.LessonsLearned),
		FinancialStatus:      reportFinancialStatus(f.FinancialStatus),
		NextSteps:            reportNextSteps(f.NextSteps),
	}
}

func reportExecutiveSummary(f *domain.ReportForm) string {
	return fmt.Sprintf(`This %s report presents the achievements, challenges, and progress of %s for the period %s.

%s has made significant strides in implementing project activities and achieving set objectives. This report provides a comprehensive overview of key accomplishments, beneficiary engagement, financial utilization, and lessons learned during the reporting period.

The project continues to demonstrate positive impact in the target communities, with measurable outcomes aligned with the original project design and donor expectations.`,
		strings.ToLower(f.ReportType),
		f.ProjectName,
		orDefault(f.ReportingPeriod, "under review"),
		f.Organization,
	)
}

func reportKeyAchievements(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`MAJOR ACCOMPLISHMENTS

%s

PERFORMANCE HIGHLIGHTS

During this reporting period, the project has exceeded expectations in several key areas. The team successfully implemented planned activities while maintaining high standards of quality and accountability. Key performance indicators show positive trends, demonstrating the effectiveness of our intervention strategies.

MILESTONES REACHED

- All major deliverables completed within the specified timeframe
- Strong stakeholder engagement and community participation
- Effective coordination with partner organizations
- Robust monitoring and documentation of project outcomes`, input)
}

func reportBeneficiariesReached(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`BENEFICIARY ENGAGEMENT

%s

DEMOGRAPHIC BREAKDOWN

The project has successfully reached diverse beneficiary groups across the target communities. Engagement has been particularly strong among priority populations, with high participation rates in project activities.

GENDER AND INCLUSION

Special attention has been given to ensuring equitable access for women, youth, and marginalized groups. The project maintains a strong commitment to inclusion and has implemented targeted strategies to reach vulnerable populations.

FEEDBACK AND SATISFACTION

Beneficiary feedback has been overwhelmingly positive, with participants reporting improved knowledge, skills, and access to services. Regular feedback mechanisms have been established to ensure continuous improvement.`, input)
}

func reportActivitiesCompleted(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`PROGRAM IMPLEMENTATION

%s

ACTIVITY DELIVERY SUMMARY

All planned activities for this reporting period have been successfully implemented. The project team maintained consistent momentum in program delivery, adapting to local contexts while ensuring alignment with project objectives.

QUALITY ASSURANCE

Rigorous quality assurance mechanisms were applied throughout implementation. Regular monitoring visits, documentation reviews, and stakeholder consultations ensured activities met established standards.

PARTNERSHIP COORDINATION

Effective collaboration with local partners, government agencies, and community stakeholders has enhanced program reach and sustainability. Joint planning sessions and coordination meetings facilitated smooth implementation.`, input)
}

func reportChallenges(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`CHALLENGES AND CONSTRAINTS

%s

CONTEXTUAL CHALLENGES

The operating environment presented several challenges that required adaptive management approaches. External factors including economic conditions, seasonal variations, and logistical constraints impacted implementation timelines.

MITIGATION STRATEGIES

The project team proactively addressed challenges through:
- Regular risk assessment and monitoring
- Flexible implementation approaches
- Strong stakeholder communication
- Resource reallocation where necessary

LESSONS FROM CHALLENGES

These challenges have provided valuable learning opportunities, informing improved strategies for future implementation phases.`, input)
}

func reportLessonsLearned(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`KEY LESSONS AND BEST PRACTICES

%s

WHAT WORKED WELL

Several approaches have proven particularly effective during this period:
- Community-led implementation strategies
- Regular stakeholder engagement and feedback loops
- Adaptive management based on real-time data
- Strong documentation and knowledge sharing

AREAS FOR IMPROVEMENT

Analysis of implementation experience has identified opportunities for enhancement:
- Earlier engagement of key stakeholders
- More frequent monitoring visits
- Enhanced capacity building for field staff
- Improved communication protocols

RECOMMENDATIONS FOR FUTURE

Based on lessons learned, the following recommendations are proposed:
- Continue successful approaches while addressing identified gaps
- Document and share best practices across the organization
- Invest in staff capacity development
- Strengthen partnership frameworks`, input)
}

func reportFinancialStatus(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`FINANCIAL PERFORMANCE

%s

BUDGET UTILIZATION

Financial resources have been managed prudently throughout the reporting period. Expenditure patterns align with approved budgets and work plans, with strong adherence to financial policies and donor requirements.

COST-EFFECTIVENESS

The project has maintained cost-effectiveness while delivering quality results. Value-for-money considerations have informed all procurement and expenditure decisions.

FINANCIAL CONTROLS

Robust financial management systems ensure transparency and accountability:
- Regular reconciliation of accounts
- Timely documentation of transactions
- Compliance with organizational and donor policies
- Internal and external audit readiness`, input)
}

func reportNextSteps(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`FORWARD PLANNING

%s

UPCOMING PRIORITIES

The next reporting period will focus on:
- Completing remaining project activities
- Strengthening sustainability mechanisms
- Enhancing documentation of outcomes
- Preparing for project completion and handover

RISK MANAGEMENT

Identified risks will be closely monitored, with mitigation strategies in place to address potential challenges.

SUSTAINABILITY PLANNING

Efforts to ensure long-term impact continuation are being prioritized, including community capacity building and partnership strengthening.`, input)
}
