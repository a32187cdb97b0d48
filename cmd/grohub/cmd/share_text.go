package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
)

var shareProfile = domain.DefaultProfile()

var shareTextCmd = &cobra.Command{
	Use:   "share-text",
	Short: "Preview the generated profile share text",
	Long:  "Prints the share text the dashboard would generate for a profile, useful for checking copy without running the server.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(profile.ShareText(shareProfile))
	},
}

func init() {
	flags := shareTextCmd.Flags()
	flags.StringVar(&shareProfile.Name, "name", shareProfile.Name, "profile name")
	flags.StringVar(&shareProfile.Designation, "designation", shareProfile.Designation, "profile designation")
	flags.StringVar(&shareProfile.Social.LinkedIn, "linkedin", shareProfile.Social.LinkedIn, "LinkedIn URL")
	flags.StringVar(&shareProfile.Social.GitHub, "github", shareProfile.Social.GitHub, "GitHub URL")
	flags.StringVar(&shareProfile.Social.Instagram, "instagram", shareProfile.Social.Instagram, "Instagram URL")
	flags.StringVar(&shareProfile.Social.Email, "email", shareProfile.Social.Email, "contact email")
	rootCmd.AddCommand(shareTextCmd)
}
