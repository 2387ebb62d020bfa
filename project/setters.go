package project

// SetTitle returns an UpdateSetter that sets the project's title.
func SetTitle(title string) UpdateSetter {
	return func(p *Project) error {
		if title == "" {
			return ErrInvalidProjectTitle
		}
		p.Title = title
		return nil
	}
}

// SetDescription returns an UpdateSetter that sets the project's description.
func SetDescription(description string) UpdateSetter {
	return func(p *Project) error {
		p.Description = description
		return nil
	}
}

// SetStatus returns an UpdateSetter that sets the project's status.
func SetStatus(status Status) UpdateSetter {
	return func(p *Project) error {
		if !status.IsValid() {
			return ErrInvalidStatus
		}
		p.Status = status
		return nil
	}
}
