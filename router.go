package main

import (
	handler "class-booking/biz/adaptor/controller"
	"class-booking/biz/adaptor/controller/api"
	"class-booking/biz/adaptor/middleware"
	"class-booking/biz/infrastructure/consts"
	"class-booking/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz, p *provider.Provider) {
	// 跨域需在注册路由前挂载
	r.Use(middleware.Cors(p.Config.Cors.AllowOrigins))

	auth := middleware.RequireAuthenticated(p.Signer)
	instructor := middleware.RequireRole(p.UserService, consts.RoleInstructor)
	admin := middleware.RequireRole(p.UserService, consts.RoleAdmin)

	r.GET("/", handler.Index)
	r.GET("/ping", handler.Ping)

	// 令牌
	r.POST("/jwt", api.SignIn)

	// 用户
	r.GET("/instructors", api.ListInstructors)
	r.PUT("/instructors/:email", api.AddInstructorClass)
	r.GET("/role/:email", auth, api.GetRole)
	r.GET("/users", auth, admin, api.ListUsers)
	r.GET("/users/:email", auth, api.GetUser)
	r.POST("/users", api.Register)
	r.PUT("/users/:id", api.UpdateRole)
	r.DELETE("/users/:id", api.DeleteUser)

	// 课程
	r.GET("/classes/:email", auth, instructor, api.ListInstructorClasses)
	r.POST("/classes", auth, instructor, api.CreateClass)
	r.GET("/allclass/:status", api.ListClasses)
	r.PATCH("/allclass/:id", api.ReviewClass)

	// 选课
	r.PUT("/select-class", api.SelectClass)
	r.GET("/selected-classes/:id", auth, api.GetClassPrice)
	r.PUT("/selected-classes/:email", auth, api.ReplaceSelectedClasses)

	// 支付
	r.POST("/create-payment-intent", auth, api.CreatePaymentIntent)
}
