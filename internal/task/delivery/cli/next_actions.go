package cli

import "todoist-agent-cli/pkg/response"

func next(command, description string) response.NextAction {
	return response.NextAction{Command: ProgramName + " " + command, Description: description}
}

func idRef(id string) string {
	return "id:" + id
}

func taskListHints() []response.NextAction {
	return []response.NextAction{
		next("show <task-ref>", "Show one task in full"),
		next("complete <task-ref>", "Mark a task done"),
		next("add \"<content>\" --due today", "Add a task for today"),
	}
}

func taskHints(id string) []response.NextAction {
	ref := idRef(id)
	return []response.NextAction{
		next("update "+ref+" --due <text>", "Reschedule this task"),
		next("comments "+ref, "Read the task's comments"),
		next("complete "+ref, "Mark this task done"),
	}
}

func addHints(id string) []response.NextAction {
	ref := idRef(id)
	return []response.NextAction{
		next("show "+ref, "Show the new task"),
		next("reminder-add "+ref+" --before 30m", "Remind before it is due"),
		next("today", "Check today's tasks"),
	}
}

func completeHints(id string) []response.NextAction {
	return []response.NextAction{
		next("today", "Re-check today's tasks"),
		next("reopen "+idRef(id), "Undo the completion"),
	}
}

func reopenHints(id string) []response.NextAction {
	return []response.NextAction{
		next("show "+idRef(id), "Show the reopened task"),
		next("today", "Check today's tasks"),
	}
}

func deleteHints() []response.NextAction {
	return []response.NextAction{
		next("today", "Check today's tasks"),
		next("activity --limit 5", "Review recent changes"),
	}
}

func commentHints(ref string, onProject bool) []response.NextAction {
	flag := ""
	if onProject {
		flag = " --project"
	}
	return []response.NextAction{
		next("comments "+ref+flag, "List the comments"),
		next("comment-add "+ref+" \"<text>\""+flag, "Add another comment"),
	}
}

func reminderHints(taskID string) []response.NextAction {
	return []response.NextAction{
		next("reminders "+idRef(taskID), "List this task's reminders"),
		next("reminder-delete <reminder-id>", "Remove a reminder"),
	}
}

func historyHints() []response.NextAction {
	return []response.NextAction{
		next("completed --since yesterday", "Tasks completed since yesterday"),
		next("review", "Daily review"),
	}
}

func projectHints() []response.NextAction {
	return []response.NextAction{
		next("list --project <project-ref>", "List a project's tasks"),
		next("sections --project <project-ref>", "List a project's sections"),
		next("add-project \"<name>\"", "Create a project"),
	}
}

func projectCreatedHints(id string) []response.NextAction {
	ref := idRef(id)
	return []response.NextAction{
		next("add-section \"<name>\" --project "+ref, "Add a section"),
		next("add \"<content>\" --project "+ref, "Add a task to it"),
	}
}

func sectionHints(projectID string) []response.NextAction {
	return []response.NextAction{
		next("add \"<content>\" --project "+idRef(projectID)+" --section <section-id>", "Add a task to a section"),
		next("move <task-ref> --section <section-id>", "Move a task into a section"),
	}
}

func labelHints() []response.NextAction {
	return []response.NextAction{
		next("list --label <name>", "List tasks with a label"),
	}
}

func reviewHints() []response.NextAction {
	return []response.NextAction{
		next("inbox", "Triage the inbox"),
		next("move <task-ref> --project <project-ref>", "File an inbox task"),
		next("update <task-ref> --due today", "Reschedule an overdue task"),
	}
}
