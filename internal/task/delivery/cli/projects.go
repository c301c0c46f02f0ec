package cli

import (
	"github.com/spf13/cobra"

	"todoist-agent-cli/internal/task"
)

func (h *handler) projectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			projects, err := uc.Projects(cmd.Context())
			if err != nil {
				return err
			}
			return h.emit(cmd, "projects", newProjectListResp(projects), projectHints()...)
		},
	}
}

func (h *handler) sectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List sections, optionally of one project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectRef, _ := cmd.Flags().GetString("project")

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			sections, err := uc.Sections(cmd.Context(), projectRef)
			if err != nil {
				return err
			}
			projectID := "<project-id>"
			if len(sections) > 0 {
				projectID = sections[0].ProjectID
			}
			return h.emit(cmd, "sections", newSectionListResp(sections), sectionHints(projectID)...)
		},
	}
	cmd.Flags().String("project", "", "project reference")
	return cmd
}

func (h *handler) labelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List personal labels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			labels, err := uc.Labels(cmd.Context())
			if err != nil {
				return err
			}
			return h.emit(cmd, "labels", newLabelListResp(labels), labelHints()...)
		},
	}
}

func (h *handler) addProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-project <name>",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := arg(cmd, args, 0, "<name>")
			if err != nil {
				return err
			}
			in := task.AddProjectInput{Name: name}
			f := cmd.Flags()
			in.Color, _ = f.GetString("color")
			in.Favorite, _ = f.GetBool("favorite")
			in.ParentRef, _ = f.GetString("parent")

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			p, err := uc.AddProject(cmd.Context(), in)
			if err != nil {
				return err
			}
			return h.emit(cmd, "add-project", newProjectResp(p), projectCreatedHints(p.ID)...)
		},
	}
	f := cmd.Flags()
	f.String("color", "", "color name, e.g. berry_red")
	f.Bool("favorite", false, "mark as favorite")
	f.String("parent", "", "parent project reference")
	return cmd
}

func (h *handler) addSectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-section <name>",
		Short: "Create a section in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := arg(cmd, args, 0, "<name>")
			if err != nil {
				return err
			}
			projectRef, _ := cmd.Flags().GetString("project")
			if projectRef == "" {
				return missingArg(cmd.UseLine(), "--project <project-ref>")
			}

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			s, err := uc.AddSection(cmd.Context(), task.AddSectionInput{Name: name, ProjectRef: projectRef})
			if err != nil {
				return err
			}
			return h.emit(cmd, "add-section", newSectionResp(s), sectionHints(s.ProjectID)...)
		},
	}
	cmd.Flags().String("project", "", "project reference (required)")
	return cmd
}
