package handler

import (
	"net/http"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/db"
	"github.com/gin-gonic/gin"
)

// Home 渲染访客主页，每次访问将 visits 计数加一。
func (a *API) Home(c *gin.Context) {
	if _, err := a.stats.Increment(db.StatVisits); err != nil {
		c.String(http.StatusInternalServerError, "failed to record visit")
		return
	}

	data, err := a.portfolio.Snapshot()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load portfolio data")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"data": data})
}

// Like 将 likes 计数加一并返回最新值。
func (a *API) Like(c *gin.Context) {
	likes, err := a.stats.Increment(db.StatLikes)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to record like")
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// ProfileClick 将 profile_clicks 计数加一后跳回主页。
func (a *API) ProfileClick(c *gin.Context) {
	if _, err := a.stats.Increment(db.StatProfileClicks); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to record click")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
