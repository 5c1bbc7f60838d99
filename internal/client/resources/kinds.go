package resources

import (
	"github.com/dmitrijs2005/backoffice/internal/client/models"
	"github.com/dmitrijs2005/backoffice/internal/client/resource"
)

// MinLength is the minimum length of every shipped field.
const MinLength = 4

func field(name string) resource.Field {
	return resource.Field{Name: name, Required: true, MinLength: MinLength}
}

func TaskResource() resource.Resource[models.Task] {
	return resource.Resource[models.Task]{
		Kind:        "task",
		Title:       "Tasks",
		Path:        "Tache",
		Fields:      []resource.Field{field("name"), field("contenu")},
		SearchField: "name",
		ID:          func(t models.Task) (int64, bool) { return models.IDOf(t.ID) },
		Values: func(t models.Task) resource.Values {
			return resource.Values{"name": t.Name, "contenu": t.Contenu}
		},
		Build: func(id *int64, v resource.Values) models.Task {
			return models.Task{ID: id, Name: v["name"], Contenu: v["contenu"]}
		},
	}
}

func EmployeeResource() resource.Resource[models.Employee] {
	return resource.Resource[models.Employee]{
		Kind:        "employee",
		Title:       "Employees",
		Path:        "Employee",
		Fields:      []resource.Field{field("name"), field("adresse"), field("telephone")},
		SearchField: "name",
		ID:          func(e models.Employee) (int64, bool) { return models.IDOf(e.ID) },
		Values: func(e models.Employee) resource.Values {
			return resource.Values{"name": e.Name, "adresse": e.Adresse, "telephone": e.Telephone}
		},
		Build: func(id *int64, v resource.Values) models.Employee {
			return models.Employee{ID: id, Name: v["name"], Adresse: v["adresse"], Telephone: v["telephone"]}
		},
	}
}

// MessageResource has no name; messages are searched by content.
func MessageResource() resource.Resource[models.Message] {
	return resource.Resource[models.Message]{
		Kind:        "message",
		Title:       "Messages",
		Path:        "Message",
		Fields:      []resource.Field{field("contenu")},
		SearchField: "contenu",
		ID:          func(m models.Message) (int64, bool) { return models.IDOf(m.ID) },
		Values: func(m models.Message) resource.Values {
			return resource.Values{"contenu": m.Contenu}
		},
		Build: func(id *int64, v resource.Values) models.Message {
			return models.Message{ID: id, Contenu: v["contenu"]}
		},
	}
}

func ForumResource() resource.Resource[models.Forum] {
	return resource.Resource[models.Forum]{
		Kind:        "forum",
		Title:       "Forums",
		Path:        "Forum",
		Fields:      []resource.Field{field("name")},
		SearchField: "name",
		ID:          func(f models.Forum) (int64, bool) { return models.IDOf(f.ID) },
		Values: func(f models.Forum) resource.Values {
			return resource.Values{"name": f.Name}
		},
		Build: func(id *int64, v resource.Values) models.Forum {
			return models.Forum{ID: id, Name: v["name"]}
		},
	}
}

func FileResource() resource.Resource[models.File] {
	return resource.Resource[models.File]{
		Kind:        "file",
		Title:       "Files",
		Path:        "Fichier",
		Fields:      []resource.Field{field("name"), field("contenu")},
		SearchField: "name",
		ID:          func(f models.File) (int64, bool) { return models.IDOf(f.ID) },
		Values: func(f models.File) resource.Values {
			return resource.Values{"name": f.Name, "contenu": f.Contenu}
		},
		Build: func(id *int64, v resource.Values) models.File {
			return models.File{ID: id, Name: v["name"], Contenu: v["contenu"]}
		},
	}
}

func ChatRoomResource() resource.Resource[models.ChatRoom] {
	return resource.Resource[models.ChatRoom]{
		Kind:        "chatroom",
		Title:       "Chat rooms",
		Path:        "ChatRoom",
		Fields:      []resource.Field{field("name")},
		SearchField: "name",
		ID:          func(c models.ChatRoom) (int64, bool) { return models.IDOf(c.ID) },
		Values: func(c models.ChatRoom) resource.Values {
			return resource.Values{"name": c.Name}
		},
		Build: func(id *int64, v resource.Values) models.ChatRoom {
			return models.ChatRoom{ID: id, Name: v["name"]}
		},
	}
}

func ProjectResource() resource.Resource[models.Project] {
	return resource.Resource[models.Project]{
		Kind:        "project",
		Title:       "Projects",
		Path:        "Project",
		Fields:      []resource.Field{field("name"), field("contenu")},
		SearchField: "name",
		ID:          func(p models.Project) (int64, bool) { return models.IDOf(p.ID) },
		Values: func(p models.Project) resource.Values {
			return resource.Values{"name": p.Name, "contenu": p.Contenu}
		},
		Build: func(id *int64, v resource.Values) models.Project {
			return models.Project{ID: id, Name: v["name"], Contenu: v["contenu"]}
		},
	}
}
