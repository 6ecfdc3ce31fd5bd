package cli

import (
	"errors"
	"fmt"

	recipeClientFactory "github.com/remirami/RecipeBank/internal/factories/recipe-client-factory"
	userModel "github.com/remirami/RecipeBank/internal/models/user"
	"github.com/remirami/RecipeBank/pkg/tools/validators"
	"github.com/spf13/cobra"
)

func newLoginCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := factory.Client.Login(cmd.Context(), userModel.LoginRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := factory.Session.Login(res.Token, res.User); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Logged in as "+res.User.Username))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := factory.Session.Logout()
			if notice := factory.Session.Notice(); notice != "" {
				fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render(notice))
			}
			return err
		},
	}
}

func newRegisterCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validators.Username(username) {
				return errors.New("username must be 3-24 alphanumeric characters")
			}
			if !validators.Email(email) {
				return errors.New("invalid email address")
			}
			if !validators.Password(password) {
				return errors.New("password must be 6-24 characters")
			}

			err := factory.Client.Register(cmd.Context(), userModel.RegisterRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Account created. Check your email to confirm your address."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newWhoamiCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := factory.Session.State()
			if !state.IsAuthenticated || factory.Session.IsTokenExpired() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", state.Username, state.UserID)
			return nil
		},
	}
}

func newConfirmEmailCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm-email <token>",
		Short: "Confirm an email address with the emailed token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := factory.Client.ConfirmEmail(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Email confirmed."))
			return nil
		},
	}
}

func newPasswordCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password recovery and rotation",
	}
	cmd.AddCommand(
		newForgotPasswordCommand(factory),
		newResetPasswordCommand(factory),
		newChangePasswordCommand(factory),
	)
	return cmd
}

func newForgotPasswordCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot",
		Short: "Request a password reset email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validators.Email(email) {
				return errors.New("invalid email address")
			}
			if err := factory.Client.ForgotPassword(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "If the address is registered, a reset link is on its way.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newResetPasswordCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	var newPassword string

	cmd := &cobra.Command{
		Use:   "reset <token>",
		Short: "Reset the password with the emailed token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validators.Password(newPassword) {
				return errors.New("password must be 6-24 characters")
			}
			if err := factory.Client.ResetPassword(cmd.Context(), args[0], newPassword); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Password reset."))
			return nil
		},
	}

	cmd.Flags().StringVar(&newPassword, "new-password", "", "new password")
	cmd.MarkFlagRequired("new-password")
	return cmd
}

func newChangePasswordCommand(factory *recipeClientFactory.Factory) *cobra.Command {
	var currentPassword, newPassword string

	cmd := &cobra.Command{
		Use:   "change",
		Short: "Change the password of the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin(factory)
			if err != nil {
				return err
			}
			if !validators.Password(newPassword) {
				return errors.New("password must be 6-24 characters")
			}

			err = factory.Client.ChangePassword(cmd.Context(), userID, currentPassword, newPassword)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Password changed."))
			return nil
		},
	}

	cmd.Flags().StringVar(&currentPassword, "current", "", "current password")
	cmd.Flags().StringVar(&newPassword, "new-password", "", "new password")
	cmd.MarkFlagRequired("current")
	cmd.MarkFlagRequired("new-password")
	return cmd
}
