package enrich

import (
	"fmt"
	"strings"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// ExpandMEPlan turns an M&E plan form into enriched section content.
func ExpandMEPlan(f *domain.MEPlanForm) *domain.MEPlanContent {
	return &domain.MEPlanContent{
		ExecutiveSummary:      mePlanExecutiveSummary(f),
		TheoryOfChange:        mePlanTheoryOfChange(f.TheoryOfChange),
		BaselineData:          mePlanBaselineData(f.BaselineData),
		OutputsAndOutcomes:    mePlanOutputsAndOutcomes(f.OutputsAndOutcomes),
		IndicatorsFramework:   mePlanIndicatorsFramework(f.Indicators),
		ReportingSchedule:     mePlanReportingSchedule(f.ReportingSchedule),
		EvaluationMethodology: mePlanEvaluationMethodology(f.EvaluationMethod),
		ProcessMonitoring:     mePlanProcessMonitoring(f.ProcessMonitoring),
	}
}

func mePlanExecutiveSummary(f *domain.MEPlanForm) string {
	return fmt.Sprintf(`This Monitoring and Evaluation (M&E) Plan provides a comprehensive framework for tracking progress, measuring outcomes, and ensuring accountability for %s.

The plan integrates both project activity monitoring and process monitoring to ensure not only that activities are completed as planned, but also that they are implemented with high quality standards and contribute to organizational learning and improvement.

%s is committed to evidence-based decision-making and continuous improvement. This M&E plan has been designed to provide timely, relevant, and actionable information to project managers, implementers, and stakeholders.`,
		f.ProjectName,
		f.Organization,
	)
}

func mePlanTheoryOfChange(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`THEORY OF CHANGE

%s

LOGIC MODEL OVERVIEW

Our Theory of Change articulates the causal pathways through which project activities lead to desired outcomes. It identifies the key assumptions that underpin our intervention and the preconditions necessary for success.

KEY ASSUMPTIONS

1. The target population has the capacity and motivation to engage with project activities
2. External factors (political, economic, social) will remain relatively stable
3. Partner organizations will maintain their commitment and capacity
4. Resources will be available as planned throughout the project period
5. The intervention approach is appropriate for the local context

CRITICAL PATHWAY

Inputs → Activities → Outputs → Outcomes → Impact

This framework guides our indicator selection and helps ensure we measure what matters most for achieving our project goal.`, input)
}

func mePlanBaselineData(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`BASELINE DATA AND SITUATION ANALYSIS

%s

BASELINE METHODOLOGY

Baseline data was collected using a mixed-methods approach, combining quantitative surveys with qualitative interviews and focus group discussions. This ensures a comprehensive understanding of the starting point against which progress will be measured.

DATA QUALITY CONSIDERATIONS

All baseline data has been validated through triangulation of sources and methods. Data collection tools were pre-tested and refined to ensure reliability and validity. Sampling was conducted to ensure representativeness of the target population.

USE OF BASELINE DATA

This baseline serves as the reference point for:
- Setting realistic and achievable targets
- Measuring progress and change over time
- Adjusting implementation strategies based on initial findings
- Demonstrating project impact to stakeholders and donors`, input)
}

func mePlanOutputsAndOutcomes(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`OUTPUTS AND OUTCOMES FRAMEWORK

%s

OUTPUTS (DIRECT PRODUCTS OF ACTIVITIES)

Outputs are the tangible products, goods, and services that result from project activities. These are within the direct control of the project team and can be measured through routine monitoring systems.

OUTCOMES (CHANGES RESULTING FROM OUTPUTS)

Outcomes represent the changes in knowledge, attitudes, skills, behaviors, or conditions that occur as a result of project outputs. These may be influenced by external factors and require more rigorous evaluation approaches.

IMPACT (LONG-TERM CHANGES)

Impact refers to the long-term, sustainable changes in conditions or well-being that can be attributed, at least in part, to the project intervention. Impact assessment typically requires longer timeframes and more sophisticated evaluation designs.

RESULTS CHAIN

Activities → Outputs → Short-term Outcomes → Medium-term Outcomes → Long-term Impact

Each level of the results chain has corresponding indicators to track progress and demonstrate contribution.`, input)
}

func mePlanIndicatorsFramework(indicators []domain.Indicator) string {
	if len(indicators) == 0 || indicators[0].Name == "" {
		return ""
	}

	var entries strings.Builder
	for i, ind := range indicators {
		if i > 0 {
			entries.WriteString("\n")
		}
		fmt.Fprintf(&entries, `
INDICATOR %d: %s
Definition: %s
Target: %s
Data Source: %s
Frequency: %s
Responsible: %s
`,
			i+1,
			ind.Name,
			orDefault(ind.Definition, "To be defined"),
			orDefault(ind.Target, "To be set"),
			orDefault(ind.DataSource, "To be determined"),
			orDefault(ind.Frequency, "To be specified"),
			orDefault(ind.Responsible, "To be assigned"),
		)
	}

	return fmt.Sprintf(`INDICATORS FRAMEWORK

The following indicators have been selected to measure progress toward project objectives. Each indicator meets the SMART criteria (Specific, Measurable, Achievable, Relevant, Time-bound) and is aligned with the Theory of Change.

%s

DATA COLLECTION METHODS

A combination of quantitative and qualitative methods will be used:
- Surveys and questionnaires for standardized data
- Key informant interviews for in-depth insights
- Focus group discussions for community perspectives
- Direct observation for verification
- Document review for secondary data

DATA QUALITY ASSURANCE

To ensure data quality, we will:
- Train data collectors on standardized procedures
- Use validated data collection tools
- Implement regular data verification checks
- Conduct periodic data quality audits
- Document all data collection processes`, entries.String())
}

func mePlanReportingSchedule(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`REPORTING SCHEDULE AND DISSEMINATION

%s

REPORTING FRAMEWORK

Regular reporting ensures that information flows to the right people at the right time to inform decision-making. Our reporting schedule includes:

INTERNAL REPORTING
- Weekly team meetings for activity updates
- Monthly progress reviews against work plans
- Quarterly performance assessments
- Annual comprehensive evaluation

EXTERNAL REPORTING
- Monthly updates to key stakeholders
- Quarterly reports to funding partners
- Semi-annual learning briefs
- Annual impact reports

INFORMATION PRODUCTS

Different audiences require different types of information:
- Dashboards for quick status updates
- Detailed reports for comprehensive analysis
- Briefing notes for decision-makers
- Case studies for learning and advocacy

DISSEMINATION STRATEGY

M&E findings will be shared through:
- Stakeholder meetings and workshops
- Email updates and newsletters
- Project website and social media
- Community feedback sessions`, input)
}

func mePlanEvaluationMethodology(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return fmt.Sprintf(`EVALUATION METHODOLOGY

%s

EVALUATION APPROACH

Our evaluation approach is designed to generate credible, useful, and ethical findings that can inform both project improvement and broader sector learning.

EVALUATION TYPES

1. PROCESS EVALUATION
   - Assesses how activities are implemented
   - Identifies barriers and facilitators
   - Informs real-time adjustments

2. OUTCOME EVALUATION
   - Measures changes in knowledge, attitudes, behaviors
   - Assesses achievement of short and medium-term outcomes
   - Uses comparison groups where appropriate

3. IMPACT EVALUATION
   - Measures long-term changes in conditions
   - Attempts to attribute changes to the project
   - Uses rigorous designs where feasible

EVALUATION CRITERIA

All evaluations will assess:
- Relevance: Is the project addressing real needs?
- Effectiveness: Are objectives being achieved?
- Efficiency: Are resources being used well?
- Impact: What difference is being made?
- Sustainability: Will benefits continue?

ETHICAL CONSIDERATIONS

All M&E activities will adhere to ethical principles:
- Informed consent from participants
- Confidentiality and data protection
- Do no harm to participants or communities
- Transparency about data use`, input)
}

func mePlanProcessMonitoring(entries []domain.ProcessMonitoringEntry) string {
	if len(entries) == 0 || entries[0].Activity == "" {
		return ""
	}

	var blocks strings.Builder
	for i, e := range entries {
		if i > 0 {
			blocks.WriteString("\n")
		}
		fmt.Fprintf(&blocks, `
PROCESS MONITORING ENTRY %d

Activity Carried Out: %s

Processes and Steps Taken: %s

Lessons Learnt: %s

Ideas and Suggestions for Process Improvement: %s

Knowledge and Skills Gained: %s
`,
			i+1, e.Activity, e.Processes, e.Lessons, e.Suggestions, e.KnowledgeGained)
	}

	return fmt.Sprintf(`PROCESS MONITORING FRAMEWORK

Process monitoring focuses on HOW activities are implemented, not just WHAT is delivered. It ensures quality standards, promotes organizational learning, and drives continuous improvement.

%s

PURPOSE OF PROCESS MONITORING

1. QUALITY ASSURANCE
   - Ensure activities meet established standards
   - Identify and address implementation challenges
   - Maintain consistency across different contexts

2. ORGANIZATIONAL LEARNING
   - Capture lessons from implementation experience
   - Document best practices and innovations
   - Build institutional knowledge

3. CONTINUOUS IMPROVEMENT
   - Identify opportunities for process optimization
   - Test and refine implementation approaches
   - Adapt to changing circumstances

PROCESS MONITORING METHODS

- Regular field observations and supervision visits
- Staff reflection meetings and debriefs
- Participant feedback and satisfaction surveys
- Review of implementation records and documentation
- Learning events and after-action reviews`, blocks.String())
}
