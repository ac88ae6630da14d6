package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/resetalabs/resetapad/pkg/reseta"
	"github.com/resetalabs/resetapad/pkg/themes"
	"github.com/resetalabs/resetapad/pkg/validation"
)

var initOutput string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively build a letterhead preset file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		preset, err := promptPreset()
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return errors.New("cancelled")
			}
			return err
		}

		if err := reseta.SavePresetFile(initOutput, preset); err != nil {
			return err
		}
		cmd.Printf("Preset written to %s\n", initOutput)
		return nil
	},
}

func promptPreset() (*reseta.Preset, error) {
	preset := &reseta.Preset{Template: *reseta.New()}

	if err := survey.AskOne(&survey.Input{
		Message: "Preset name:",
	}, &preset.Name, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	prompts := []struct {
		message string
		field   string
		target  *string
	}{
		{"Clinic name:", reseta.FieldClinicName, &preset.Template.ClinicName},
		{"Doctor name:", reseta.FieldDoctorName, &preset.Template.DoctorName},
		{"Professional title:", reseta.FieldProfessionalTitle, &preset.Template.ProfessionalTitle},
		{"Specialty:", reseta.FieldSpecialty, &preset.Template.Specialty},
		{"Clinic address:", reseta.FieldClinicAddress, &preset.Template.ClinicAddress},
		{"City:", reseta.FieldClinicCity, &preset.Template.ClinicCity},
		{"Country:", reseta.FieldClinicCountry, &preset.Template.ClinicCountry},
		{"Phone:", reseta.FieldPhone, &preset.Template.Phone},
		{"Email:", reseta.FieldEmail, &preset.Template.Email},
		{"License No.:", reseta.FieldLicenseNo, &preset.Template.LicenseNo},
	}

	validator := validation.NewValidator()
	for _, p := range prompts {
		field := p.field
		err := survey.AskOne(&survey.Input{
			Message: p.message,
			Default: *p.target,
		}, p.target, survey.WithValidator(func(ans interface{}) error {
			value, _ := ans.(string)
			if msg := validator.ValidateField(field, strings.TrimSpace(value)); msg != "" {
				return errors.New(msg)
			}
			return nil
		}))
		if err != nil {
			return nil, err
		}
	}

	selector := themes.NewSelector()
	var palette string
	if err := survey.AskOne(&survey.Select{
		Message: "Color theme:",
		Options: selector.Names(),
		Default: themes.DefaultTheme,
	}, &palette); err != nil {
		return nil, err
	}
	selection, err := selector.Select(palette, "")
	if err != nil {
		return nil, err
	}
	if err := themes.Apply(selection, &preset.Template); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Show the Rx symbol on the sheet?",
		Default: true,
	}, &preset.Template.ShowRxSymbol); err != nil {
		return nil, err
	}

	for _, day := range reseta.Weekdays {
		var hours string
		if err := survey.AskOne(&survey.Input{
			Message: fmt.Sprintf("Clinic hours for %s (blank to skip):", reseta.DayLabel(day)),
		}, &hours); err != nil {
			return nil, err
		}
		if strings.TrimSpace(hours) == "" {
			continue
		}
		if err := preset.Template.SetHours(day, hours); err != nil {
			return nil, err
		}
	}

	return preset, nil
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "letterhead.yaml", "where to write the preset")
	rootCmd.AddCommand(initCmd)
}
