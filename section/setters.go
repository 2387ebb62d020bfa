package section

// SetTitle returns an UpdateSetter that renames the section.
func SetTitle(title string) UpdateSetter {
	return func(s *Section) error {
		if title == "" {
			return ErrInvalidSectionTitle
		}
		s.Title = title
		return nil
	}
}
