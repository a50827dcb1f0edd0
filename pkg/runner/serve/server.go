// Package serve runs the HTML front end of the todo list.
package serve

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tableflip.dev/todo/pkg/filter"
	"tableflip.dev/todo/pkg/log"
	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/todo"
)

// Server renders the store as an HTML page and turns form posts into store
// operations. Every post redirects back to the page.
type Server struct {
	store  *todo.Store
	list   *render.HTMLCache
	router *gin.Engine
	title  string
}

func NewServer(s *todo.Store, title string) *Server {
	gin.SetMode(gin.ReleaseMode)

	srv := &Server{
		store: s,
		list:  &render.HTMLCache{},
		title: title,
	}
	// The store redraws the list into the cache after every change; pages
	// embed whatever was drawn last.
	s.SetRenderer(srv.list)
	if err := srv.list.Render(s.Snapshot()); err != nil {
		log.Warn().Err(err).Msg("serve: initial render")
	}

	srv.router = gin.New()
	srv.router.Use(gin.Recovery())
	srv.router.Use(log.GinLogger())
	srv.setupRoutes()
	return srv
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handlePage)
	s.router.GET("/api/tasks", s.handleJSON)
	s.router.POST("/todos", s.handleAdd)
	s.router.POST("/filter/:name", s.handleFilter)

	todos := s.router.Group("/todos/:id")
	todos.Use(s.requireID)
	todos.POST("/toggle", s.handleToggle)
	todos.POST("/delete", s.handleDelete)
	todos.POST("/edit", s.handleEdit)
	todos.POST("/save", s.handleSave)
	todos.POST("/cancel", s.handleCancel)
}

const idKey = "todo_id"

func (s *Server) requireID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid task id %q", c.Param("id"))
		c.Abort()
		return
	}
	c.Set(idKey, id)
	c.Next()
}

func (s *Server) back(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "could not save the list")
}

func (s *Server) handlePage(c *gin.Context) {
	if name, ok := c.GetQuery("filter"); ok {
		f, err := filter.Parse(name)
		if err != nil {
			c.String(http.StatusBadRequest, "%s", err.Error())
			return
		}
		s.store.SetFilter(f)
	}

	// The cached markup and its view come from the same render, so the counts
	// always agree with the rows.
	v, list := s.list.Last()
	var buf bytes.Buffer
	page := render.Page{W: &buf, Title: s.title}
	if err := page.Render(v, list); err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleJSON(c *gin.Context) {
	c.JSON(http.StatusOK, render.NewViewDTO(s.store.Snapshot()))
}

func (s *Server) handleAdd(c *gin.Context) {
	if _, err := s.store.Add(c.PostForm("text")); err != nil {
		s.fail(c, err)
		return
	}
	s.back(c)
}

func (s *Server) handleFilter(c *gin.Context) {
	f, err := filter.Parse(c.Param("name"))
	if err != nil {
		c.String(http.StatusBadRequest, "%s", err.Error())
		return
	}
	s.store.SetFilter(f)
	s.back(c)
}

func (s *Server) handleToggle(c *gin.Context) {
	if _, err := s.store.Toggle(c.GetInt64(idKey)); err != nil {
		s.fail(c, err)
		return
	}
	s.back(c)
}

func (s *Server) handleDelete(c *gin.Context) {
	if _, err := s.store.Remove(c.GetInt64(idKey)); err != nil {
		s.fail(c, err)
		return
	}
	s.back(c)
}

func (s *Server) handleEdit(c *gin.Context) {
	s.store.BeginEdit(c.GetInt64(idKey))
	s.back(c)
}

func (s *Server) handleSave(c *gin.Context) {
	if _, err := s.store.CommitEdit(c.GetInt64(idKey), c.PostForm("text")); err != nil {
		s.fail(c, err)
		return
	}
	s.back(c)
}

func (s *Server) handleCancel(c *gin.Context) {
	s.store.CancelEdit()
	s.back(c)
}
