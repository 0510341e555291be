package ecs

type UpdateFrame struct {
	DeltaTime float64
	Frame     uint64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Commands: newCommands(),
		Storage:  storage,
	}
}
