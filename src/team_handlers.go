package main

import (
	"net/http"

	"hrms/src/common"
	"hrms/src/types"
	"hrms/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func teamHandlers(g *gin.RouterGroup, d *gorm.DB) *gin.RouterGroup {
	g.
		GET("/teams", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			teams, err := common.ListTeams(d, org)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": teams})
		}).
		GET("/teams/:id", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			id, err := parseIDParam(ctx)
			if err != nil {
				utils.RespondError(ctx, types.ErrNotFound("Team not found"))
				return
			}
			team, err := common.GetTeam(d, org, id)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": team})
		}).
		POST("/teams", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			userId := ctx.GetUint("id")
			var body types.CreateTeamRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.RespondError(ctx, types.ErrValidation("Team name is required"))
				return
			}
			team, err := common.CreateTeam(d, org, userId, &body)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "message": "Team created successfully", "data": team})
		}).
		PUT("/teams/:id", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			userId := ctx.GetUint("id")
			id, err := parseIDParam(ctx)
			if err != nil {
				utils.RespondError(ctx, types.ErrNotFound("Team not found"))
				return
			}
			var body types.UpdateTeamRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.RespondError(ctx, types.ErrValidation("Invalid request body"))
				return
			}
			team, err := common.UpdateTeam(d, org, userId, id, &body)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Team updated successfully", "data": team})
		}).
		DELETE("/teams/:id", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			userId := ctx.GetUint("id")
			id, err := parseIDParam(ctx)
			if err != nil {
				utils.RespondError(ctx, types.ErrNotFound("Team not found"))
				return
			}
			if err := common.DeleteTeam(d, org, userId, id); err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Team deleted successfully"})
		})
	return g
}
