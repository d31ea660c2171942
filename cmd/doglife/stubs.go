package main

import (
	"fmt"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/thoughts"

	"github.com/spf13/cobra"
)

var thoughtCmd = &cobra.Command{
	Use:   "thought",
	Short: "Print a dog thought for the given gender",
	Long: `Print a dog thought for the given gender, without latency.

Examples:
  doglife thought --gender female
  doglife thought --gender male --image /park-playtime.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := genderFlag(cmd)
		if err != nil {
			return err
		}
		image, _ := cmd.Flags().GetString("image")

		svc := thoughts.NewService(thoughts.Options{})
		text, err := svc.GenerateThought(cmd.Context(), image, g)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Print the voice sample chosen for a text",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := genderFlag(cmd)
		if err != nil {
			return err
		}
		text, _ := cmd.Flags().GetString("text")

		svc := thoughts.NewService(thoughts.Options{})
		v, err := svc.GenerateVoice(cmd.Context(), text, g)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", v.Message, v.SampleURL)
		return nil
	},
}

func init() {
	thoughtCmd.Flags().String("gender", "", "male or female")
	thoughtCmd.Flags().String("image", "", "image reference (ignored by the stub)")
	_ = thoughtCmd.MarkFlagRequired("gender")

	voiceCmd.Flags().String("gender", "", "male or female")
	voiceCmd.Flags().String("text", "", "text to voice")
	_ = voiceCmd.MarkFlagRequired("gender")
	_ = voiceCmd.MarkFlagRequired("text")
}

func genderFlag(cmd *cobra.Command) (dogs.Gender, error) {
	raw, _ := cmd.Flags().GetString("gender")
	return dogs.ParseGender(raw)
}
