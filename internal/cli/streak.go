package cli

import "fmt"

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	svc := ctx.Service()
	dash, err := svc.Dashboard(user.ID)
	if err != nil {
		return err
	}

	if dash.StreakDays == 0 {
		fmt.Println("No active streak. Log a day at or under target to start one.")
	} else {
		fmt.Printf("Streak: %s at or under target. Keep it going!\n", formatStreak(dash.StreakDays))
	}

	return nil
}
