package webapp

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the cafe listing and the add-cafe form. All data comes from
// the API; the webapp has no database of its own.
type Server struct {
	api *Client
}

func NewServer(api *Client) *Server {
	return &Server{api: api}
}

func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	router.GET("/", s.Index)
	router.GET("/add_cafe", s.ShowAddCafe)
	router.POST("/add_cafe", s.SubmitAddCafe)

	return router
}

func (s *Server) Index(c *gin.Context) {
	// A dead API should not take the page down with it, so render the empty
	// listing instead.
	cafes, err := s.api.ListCafes(c.Request.Context())
	if err != nil {
		log.Printf("list cafes: %v", err)
		cafes = nil
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Cafes": cafes,
		"Added": c.Query("added") == "1",
	})
}

func (s *Server) ShowAddCafe(c *gin.Context) {
	c.HTML(http.StatusOK, "add_cafe.html", gin.H{})
}

func (s *Server) SubmitAddCafe(c *gin.Context) {
	payload := cafePayload{
		Name:         c.PostForm("name"),
		MapURL:       c.PostForm("map_url"),
		ImgURL:       c.PostForm("img_url"),
		Location:     c.PostForm("location"),
		HasSockets:   c.PostForm("has_sockets") == "yes",
		HasToilet:    c.PostForm("has_toilet") == "yes",
		HasWifi:      c.PostForm("has_wifi") == "yes",
		CanTakeCalls: c.PostForm("can_take_calls") == "yes",
		Seats:        c.PostForm("seats"),
		CoffeePrice:  c.PostForm("coffee_price"),
	}

	if err := s.api.AddCafe(c.Request.Context(), payload); err != nil {
		log.Printf("add cafe: %v", err)
		c.HTML(http.StatusOK, "add_cafe.html", gin.H{
			"Error": "Failed to add cafe. Please try again.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/?added=1")
}
