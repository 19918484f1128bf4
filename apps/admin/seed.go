package main

import (
	"fmt"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/task"
)

// seed inserts `count` sample tasks spread over the coming days, alternating
// between plain tasks and meetings.
func (cli *commandLine) seed(count int) error {
	now := time.Now()

	for i := 0; i < count; i++ {
		day := now.AddDate(0, 0, i)
		start := 9 + i%8

		nt := task.NewTask{
			Title:     fmt.Sprintf("Sample task %d", i+1),
			Type:      task.TypeTask,
			Date:      day.Format(core.DateLayout),
			StartTime: fmt.Sprintf("%02d:00", start),
			EndTime:   fmt.Sprintf("%02d:00", start+1),
		}
		if i%2 == 1 {
			nt.Title = fmt.Sprintf("Sample meeting %d", i+1)
			nt.Type = task.TypeMeeting
		}

		if _, err := cli.taskSvc.Create(nt); err != nil {
			return err
		}
	}
	return nil
}
