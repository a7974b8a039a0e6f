package entities

type ValidatedMedia struct {
	*Media
}

func NewValidatedMedia(media *Media) (*ValidatedMedia, error) {
	if err := media.validate(); err != nil {
		return nil, err
	}

	return &ValidatedMedia{Media: media}, nil
}

func (vm *ValidatedMedia) GetMedia() *Media {
	return vm.Media
}
