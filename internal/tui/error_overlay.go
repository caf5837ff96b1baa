package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc to close"
	return overlayBoxStyle.Render(errorStyle.Render(content))
}
