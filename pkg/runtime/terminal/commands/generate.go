package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ngo-tools/grant-forge/pkg/adapters"
	docexport "github.com/ngo-tools/grant-forge/pkg/export"
	"github.com/ngo-tools/grant-forge/pkg/models/api"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/runtime/terminal/export"
	"github.com/ngo-tools/grant-forge/pkg/services/config"
	"github.com/ngo-tools/grant-forge/pkg/services/generator"

	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	inputPath   string
	docType     string
	profileName string
	outDir      string
	format      string
	svc         generator.Service
	profiles    config.Registry
	reporter    *export.Reporter
}

func NewGenerateCmd(svc generator.Service, profiles config.Registry, reporter *export.Reporter) *cobra.Command {
	gc := &GenerateCmd{svc: svc, profiles: profiles, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a funding document from a form file",
		RunE:  gc.run,
	}

	// Define flags
	cmd.Flags().StringVar(&gc.inputPath, "input", "", "Path to the JSON form file")
	cmd.Flags().StringVar(&gc.docType, "type", "", "Document type to generate (e.g., proposal)")
	cmd.Flags().StringVar(&gc.profileName, "profile", "", "Organization profile to prefill blank fields")
	cmd.Flags().StringVar(&gc.outDir, "out", ".", "Directory to write the generated file to")
	cmd.Flags().StringVar(&gc.format, "format", "docx", "Output format: docx, csv or text")

	// Mark required flags
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	docType, err := domain.ParseDocType(gc.docType)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(gc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var profile *config.Profile
	if gc.profileName != "" {
		if gc.profiles == nil {
			return fmt.Errorf("no profile configuration found, cannot use profile %q", gc.profileName)
		}
		profile, err = gc.profiles.GetProfile(ctx, gc.profileName)
		if err != nil {
			return err
		}
	}

	edit, err := buildEdit(docType, raw, profile)
	if err != nil {
		return err
	}

	session, err := gc.svc.NewSession(docType)
	if err != nil {
		return err
	}
	defer gc.svc.Close(session.ID())

	if err := session.Edit(edit); err != nil {
		return err
	}
	if err := session.Generate(ctx); err != nil {
		return err
	}

	doc, err := session.Document()
	if err != nil {
		return err
	}

	switch gc.format {
	case "text":
		return gc.reporter.Handle(doc)
	case "docx":
		return gc.writeFile(doc.Filename, func(f *os.File) error {
			return docexport.WriteDocx(doc, f)
		})
	case "csv":
		form := session.Form().Budget
		if form == nil {
			return fmt.Errorf("csv output is only available for budgets")
		}
		name := docexport.SanitizeName(form.ProjectName) + "_Budget.csv"
		return gc.writeFile(name, func(f *os.File) error {
			return docexport.WriteBudgetCSV(form, f)
		})
	}
	return fmt.Errorf("unknown format %q", gc.format)
}

func (gc *GenerateCmd) writeFile(name string, write func(*os.File) error) error {
	path := filepath.Join(gc.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}

// buildEdit parses the raw form and returns the session edit that
// installs it. Profile values fill fields the form left blank, before
// the adapters apply their own defaults.
func buildEdit(t domain.DocType, raw []byte, p *config.Profile) (func(*generator.FormState) error, error) {
	switch t {
	case domain.DocTypeProposal:
		var in api.ProposalForm
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("failed to parse proposal form: %w", err)
		}
		if p != nil && in.OrganizationName == "" {
			in.OrganizationName = p.Organization
		}
		return func(fs *generator.FormState) error {
			fs.Proposal = adapters.MapApiProposalFormToDomain(in)
			return nil
		}, nil
	case domain.DocTypeWorkPlan:
		var in api.WorkPlanForm
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("failed to parse work plan form: %w", err)
		}
		if p != nil && in.Organization == "" {
			in.Organization = p.Organization
		}
		return func(fs *generator.FormState) error {
			fs.WorkPlan = adapters.MapApiWorkPlanFormToDomain(in)
			return nil
		}, nil
	case domain.DocTypeMEPlan:
		var in api.MEPlanForm
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("failed to parse M&E plan form: %w", err)
		}
		if p != nil && in.Organization == "" {
			in.Organization = p.Organization
		}
		return func(fs *generator.FormState) error {
			fs.MEPlan = adapters.MapApiMEPlanFormToDomain(in)
			return nil
		}, nil
	case domain.DocTypeBudget:
		var in api.BudgetForm
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("failed to parse budget form: %w", err)
		}
		if p != nil {
			if in.Organization == "" {
				in.Organization = p.Organization
			}
			if in.Currency == "" {
				in.Currency = p.Currency
			}
			if in.ContingencyPercent == 0 {
				in.ContingencyPercent = p.ContingencyPercent
			}
		}
		return func(fs *generator.FormState) error {
			fs.Budget = adapters.MapApiBudgetFormToDomain(in)
			return nil
		}, nil
	case domain.DocTypeReport:
		var in api.ReportForm
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("failed to parse report form: %w", err)
		}
		if p != nil {
			if in.Organization == "" {
				in.Organization = p.Organization
			}
			if in.PreparedBy == "" {
				in.PreparedBy = p.PreparedBy
			}
		}
		return func(fs *generator.FormState) error {
			fs.Report = adapters.MapApiReportFormToDomain(in)
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unknown document type %q", t)
}
